package editor

import (
	"strconv"
	"strings"

	"github.com/glowdesk/medspa-console/internal/dates"
	"github.com/glowdesk/medspa-console/internal/models"
)

// TreatmentSpec edits treatment records. Submission is multipart so the
// optional before/after photos can ride along.
func TreatmentSpec() Spec[models.TreatmentRecord] {
	return Spec[models.TreatmentRecord]{
		Path:        "/treatments",
		Multipart:   true,
		PhotoFields: []string{"before_photo", "after_photo"},

		Defaults: func() map[string]string {
			return map[string]string{
				"appointment_id": "",
				"client_ref":     "",
				"treatment_type": "",
				"notes":          "",
				"description":    "",
				"cost":           "0",
				"status":         models.TreatmentPending,
				"treatment_date": dates.Today(),
			}
		},

		FromRecord: func(t models.TreatmentRecord) map[string]string {
			return map[string]string{
				"appointment_id": t.AppointmentID,
				"client_ref":     t.ClientRef,
				"treatment_type": t.TreatmentType,
				"notes":          t.Notes,
				"description":    t.Description,
				"cost":           t.Cost,
				"status":         t.Status,
				"treatment_date": t.TreatmentDate,
			}
		},

		RecordID: func(t models.TreatmentRecord) string { return t.ID },

		Validate: validateTreatment,
	}
}

func validateTreatment(fields map[string]string, _ bool) map[string]string {
	errs := map[string]string{}

	if strings.TrimSpace(fields["notes"]) == "" {
		errs["notes"] = "treatment notes are required"
	}
	if strings.TrimSpace(fields["treatment_type"]) == "" {
		errs["treatment_type"] = "treatment type is required"
	}

	if costStr := strings.TrimSpace(fields["cost"]); costStr != "" {
		cost, err := strconv.ParseFloat(costStr, 64)
		if err != nil {
			errs["cost"] = "cost must be a number"
		} else if cost < 0 {
			errs["cost"] = "cost cannot be negative"
		}
	}

	if date := strings.TrimSpace(fields["treatment_date"]); date != "" {
		if _, err := dates.ParseDay(date); err != nil {
			errs["treatment_date"] = "date must be YYYY-MM-DD"
		}
	}

	return errs
}
