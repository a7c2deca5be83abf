package dto

import (
	"testing"

	model "sekolahku_backend/internals/features/school/students/model"
)

func strPtr(s string) *string { return &s }
func intPtr(i int) *int       { return &i }

func TestUpdateStudentRequestApplyToModel(t *testing.T) {
	base := func() *model.StudentModel {
		return &model.StudentModel{
			StudentName:         "Aisyah Putri",
			StudentRollNumber:   "7A-001",
			StudentClass:        "7A",
			StudentAge:          12,
			StudentGender:       "female",
			StudentGuardianName: strPtr("Hendra Putra"),
			StudentStatus:       model.StatusActive,
		}
	}

	tests := []struct {
		name  string
		req   UpdateStudentRequest
		check func(t *testing.T, m *model.StudentModel)
	}{
		{
			name: "empty request changes nothing",
			req:  UpdateStudentRequest{},
			check: func(t *testing.T, m *model.StudentModel) {
				if m.StudentName != "Aisyah Putri" || m.StudentClass != "7A" || m.StudentAge != 12 {
					t.Errorf("untouched fields changed: %+v", m)
				}
				if m.StudentGuardianName == nil || *m.StudentGuardianName != "Hendra Putra" {
					t.Errorf("guardian changed: %v", m.StudentGuardianName)
				}
			},
		},
		{
			name: "only sent fields change",
			req: UpdateStudentRequest{
				StudentClass: strPtr("8A"),
				StudentAge:   intPtr(13),
			},
			check: func(t *testing.T, m *model.StudentModel) {
				if m.StudentClass != "8A" {
					t.Errorf("class = %q, want 8A", m.StudentClass)
				}
				if m.StudentAge != 13 {
					t.Errorf("age = %d, want 13", m.StudentAge)
				}
				if m.StudentName != "Aisyah Putri" {
					t.Errorf("name changed: %q", m.StudentName)
				}
			},
		},
		{
			name: "strings are trimmed",
			req: UpdateStudentRequest{
				StudentName: strPtr("  Raka Pratama  "),
			},
			check: func(t *testing.T, m *model.StudentModel) {
				if m.StudentName != "Raka Pratama" {
					t.Errorf("name = %q, want trimmed", m.StudentName)
				}
			},
		},
		{
			name: "blank optional clears the pointer",
			req: UpdateStudentRequest{
				StudentGuardianName: strPtr("   "),
			},
			check: func(t *testing.T, m *model.StudentModel) {
				if m.StudentGuardianName != nil {
					t.Errorf("guardian = %v, want nil", *m.StudentGuardianName)
				}
			},
		},
		{
			name: "status transition",
			req: UpdateStudentRequest{
				StudentStatus: strPtr(model.StatusGraduated),
			},
			check: func(t *testing.T, m *model.StudentModel) {
				if m.StudentStatus != model.StatusGraduated {
					t.Errorf("status = %q, want graduated", m.StudentStatus)
				}
			},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			m := base()
			tc.req.ApplyToModel(m)
			tc.check(t, m)
		})
	}
}

func TestCreateStudentRequestToModelDefaults(t *testing.T) {
	req := CreateStudentRequest{
		StudentName:       "  Nadia Safitri ",
		StudentRollNumber: " 7B-001 ",
		StudentClass:      "7B",
		StudentAge:        12,
		StudentGender:     "female",
	}

	m := req.ToModel()
	if m.StudentName != "Nadia Safitri" {
		t.Errorf("name = %q, want trimmed", m.StudentName)
	}
	if m.StudentRollNumber != "7B-001" {
		t.Errorf("roll = %q, want trimmed", m.StudentRollNumber)
	}
	if m.StudentStatus != model.StatusActive {
		t.Errorf("status = %q, want default active", m.StudentStatus)
	}
	if m.StudentGuardianName != nil {
		t.Errorf("guardian = %v, want nil", *m.StudentGuardianName)
	}
}
