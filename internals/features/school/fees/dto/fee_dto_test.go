package dto

import (
	"testing"
	"time"

	model "sekolahku_backend/internals/features/school/fees/model"
)

func strPtr(s string) *string     { return &s }
func floatPtr(f float64) *float64 { return &f }

func TestUpdateFeeRequestPaymentDateTransitions(t *testing.T) {
	paidAt := time.Date(2026, 8, 1, 10, 0, 0, 0, time.UTC)

	tests := []struct {
		name         string
		start        model.FeeModel
		req          UpdateFeeRequest
		wantStatus   string
		wantDateSet  bool
		wantDateKept *time.Time
	}{
		{
			name:        "pending to paid stamps payment date",
			start:       model.FeeModel{FeeStatus: model.StatusPending},
			req:         UpdateFeeRequest{FeeStatus: strPtr(model.StatusPaid)},
			wantStatus:  model.StatusPaid,
			wantDateSet: true,
		},
		{
			name:        "overdue to paid stamps payment date",
			start:       model.FeeModel{FeeStatus: model.StatusOverdue},
			req:         UpdateFeeRequest{FeeStatus: strPtr(model.StatusPaid)},
			wantStatus:  model.StatusPaid,
			wantDateSet: true,
		},
		{
			name:        "paid to pending clears payment date",
			start:       model.FeeModel{FeeStatus: model.StatusPaid, FeePaymentDate: &paidAt},
			req:         UpdateFeeRequest{FeeStatus: strPtr(model.StatusPending)},
			wantStatus:  model.StatusPending,
			wantDateSet: false,
		},
		{
			name:         "same status keeps existing payment date",
			start:        model.FeeModel{FeeStatus: model.StatusPaid, FeePaymentDate: &paidAt},
			req:          UpdateFeeRequest{FeeStatus: strPtr(model.StatusPaid)},
			wantStatus:   model.StatusPaid,
			wantDateSet:  true,
			wantDateKept: &paidAt,
		},
		{
			name:       "amount only leaves status alone",
			start:      model.FeeModel{FeeStatus: model.StatusPending, FeeAmount: 100},
			req:        UpdateFeeRequest{FeeAmount: floatPtr(250)},
			wantStatus: model.StatusPending,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			m := tc.start
			tc.req.ApplyToModel(&m)

			if m.FeeStatus != tc.wantStatus {
				t.Errorf("status = %q, want %q", m.FeeStatus, tc.wantStatus)
			}
			if tc.wantDateSet && m.FeePaymentDate == nil {
				t.Error("payment date = nil, want set")
			}
			if !tc.wantDateSet && m.FeePaymentDate != nil {
				t.Errorf("payment date = %v, want nil", m.FeePaymentDate)
			}
			if tc.wantDateKept != nil && (m.FeePaymentDate == nil || !m.FeePaymentDate.Equal(*tc.wantDateKept)) {
				t.Errorf("payment date = %v, want unchanged %v", m.FeePaymentDate, tc.wantDateKept)
			}
			if tc.req.FeeAmount != nil && m.FeeAmount != *tc.req.FeeAmount {
				t.Errorf("amount = %v, want %v", m.FeeAmount, *tc.req.FeeAmount)
			}
		})
	}
}

func TestCreateFeeRequestToModel(t *testing.T) {
	t.Run("default status pending without payment date", func(t *testing.T) {
		m := CreateFeeRequest{FeeAmount: floatPtr(150000), FeeTerm: "Term 1", FeeAcademicYear: "2026/2027"}.ToModel()
		if m.FeeStatus != model.StatusPending {
			t.Errorf("status = %q, want pending", m.FeeStatus)
		}
		if m.FeePaymentDate != nil {
			t.Errorf("payment date = %v, want nil", m.FeePaymentDate)
		}
	})

	t.Run("created as paid stamps payment date", func(t *testing.T) {
		m := CreateFeeRequest{
			FeeAmount:       floatPtr(150000),
			FeeTerm:         "Term 1",
			FeeAcademicYear: "2026/2027",
			FeeStatus:       strPtr(model.StatusPaid),
		}.ToModel()
		if m.FeeStatus != model.StatusPaid {
			t.Errorf("status = %q, want paid", m.FeeStatus)
		}
		if m.FeePaymentDate == nil {
			t.Error("payment date = nil, want set")
		}
	})
}
