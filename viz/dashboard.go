// ABOUTME: Terminal referral statistics rendering
// ABOUTME: Provides an ASCII overview of referral counts per status
package viz

import (
	"fmt"
	"strings"

	"github.com/serviceradar/radar/models"
)

type ReferralStats struct {
	ByStatus  map[string]int
	ByCompany map[string]int
	Total     int
}

// ComputeReferralStats tallies referrals per status and target company.
func ComputeReferralStats(referrals []models.Referral) *ReferralStats {
	stats := &ReferralStats{
		ByStatus:  make(map[string]int),
		ByCompany: make(map[string]int),
		Total:     len(referrals),
	}
	for _, r := range referrals {
		status := r.Status
		if status == "" {
			status = models.ReferralPending
		}
		stats.ByStatus[status]++
		if r.TargetCompany.Name != "" {
			stats.ByCompany[r.TargetCompany.Name]++
		}
	}
	return stats
}

// Render returns a plain-text summary block.
func (s *ReferralStats) Render() string {
	var b strings.Builder

	b.WriteString("REFERRAL PIPELINE\n")
	b.WriteString("=================\n\n")

	for _, status := range []string{models.ReferralPending, models.ReferralAccepted, models.ReferralRejected} {
		count := s.ByStatus[status]
		bar := strings.Repeat("█", count)
		b.WriteString(fmt.Sprintf("%-10s %3d %s\n", status, count, bar))
	}

	b.WriteString(fmt.Sprintf("\nTotal: %d referral(s)\n", s.Total))
	return b.String()
}
