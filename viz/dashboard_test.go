package viz

import (
	"strings"
	"testing"

	"github.com/serviceradar/radar/models"
)

func TestComputeReferralStats(t *testing.T) {
	referrals := []models.Referral{
		{ID: 1, Status: models.ReferralPending, TargetCompany: models.Company{Name: "Acme"}},
		{ID: 2, Status: models.ReferralAccepted, TargetCompany: models.Company{Name: "Acme"}},
		{ID: 3, Status: models.ReferralAccepted, TargetCompany: models.Company{Name: "Bosphorus"}},
		{ID: 4}, // missing status counts as pending
	}

	stats := ComputeReferralStats(referrals)

	if stats.Total != 4 {
		t.Errorf("Total = %d, want 4", stats.Total)
	}
	if stats.ByStatus[models.ReferralPending] != 2 {
		t.Errorf("Pending = %d, want 2", stats.ByStatus[models.ReferralPending])
	}
	if stats.ByStatus[models.ReferralAccepted] != 2 {
		t.Errorf("Accepted = %d, want 2", stats.ByStatus[models.ReferralAccepted])
	}
	if stats.ByCompany["Acme"] != 2 {
		t.Errorf("Acme = %d, want 2", stats.ByCompany["Acme"])
	}
}

func TestRenderStats(t *testing.T) {
	stats := ComputeReferralStats([]models.Referral{
		{ID: 1, Status: models.ReferralAccepted},
	})

	out := stats.Render()
	if !strings.Contains(out, "accepted") {
		t.Errorf("Render output missing status line:\n%s", out)
	}
	if !strings.Contains(out, "Total: 1") {
		t.Errorf("Render output missing total:\n%s", out)
	}
}
