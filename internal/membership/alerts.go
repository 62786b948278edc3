package membership

import (
	"sort"
	"time"

	"github.com/antologiabox23-boop/antologia-pro/internal/user"
	"github.com/antologiabox23-boop/antologia-pro/internal/vigency"
)

// DefaultInactivityThreshold is the number of days without a visit after
// which a member is flagged.
const DefaultInactivityThreshold = 6

// IsComplianceEligible reports whether a member participates in vigency
// classification and inactivity alerting. Trainers and deactivated members
// do not.
func IsComplianceEligible(u user.User) bool {
	return u.Status == user.StatusActive && u.AffiliationType != user.AffiliationTrainer
}

// ComputeAlerts flags eligible members whose last visit was strictly more
// than threshold days before asOf. Members who have never attended are
// always flagged. The result is ordered most severe first: never-attended
// members, then by days since last visit descending; ties keep the input
// order.
func ComputeAlerts(users []user.User, ledger *Ledger, threshold int, asOf time.Time) []Alert {
	asOf = vigency.DateOnly(asOf)
	alerts := []Alert{}

	for _, u := range users {
		if !IsComplianceEligible(u) {
			continue
		}

		last := ledger.LastPresent(u.ID)
		if last == nil {
			alerts = append(alerts, Alert{
				UserID: u.ID,
				Name:   u.Name,
				Email:  u.Email,
				Phone:  u.Phone,
			})
			continue
		}

		days := vigency.DiffDays(asOf, *last)
		if days > threshold {
			lastVisit := vigency.DateOnly(*last)
			alerts = append(alerts, Alert{
				UserID:             u.ID,
				Name:               u.Name,
				Email:              u.Email,
				Phone:              u.Phone,
				LastVisit:          &lastVisit,
				DaysSinceLastVisit: &days,
			})
		}
	}

	sort.SliceStable(alerts, func(i, j int) bool {
		di, dj := alerts[i].DaysSinceLastVisit, alerts[j].DaysSinceLastVisit
		if di == nil {
			return dj != nil
		}
		if dj == nil {
			return false
		}
		return *di > *dj
	})

	return alerts
}
