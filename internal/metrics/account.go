package metrics

import (
	"strings"
	"time"

	"github.com/prgate/prgate/internal/models"
)

// ExtractAccount computes account age and the activity consistency score.
// A month counts as active when it contains at least one PR creation; the
// score is active months over the window length.
func ExtractAccount(s *models.ContributorActivitySnapshot, now time.Time, newAccountDays int) models.AccountData {
	data := models.AccountData{
		CreatedAt:    s.Profile.CreatedAt,
		WindowMonths: s.Window.Months(),
	}

	if !s.Profile.CreatedAt.IsZero() {
		age := now.Sub(s.Profile.CreatedAt)
		if age > 0 {
			data.AgeInDays = int(age.Hours() / 24)
		}
	}
	data.IsNewAccount = data.AgeInDays < newAccountDays

	active := make(map[string]bool)
	for _, pr := range s.PullRequests {
		active[pr.CreatedAt.Format("2006-01")] = true
	}
	data.ActiveMonths = len(active)

	if data.WindowMonths > 0 {
		data.ConsistencyScore = float64(data.ActiveMonths) / float64(data.WindowMonths)
		if data.ConsistencyScore > 1 {
			data.ConsistencyScore = 1
		}
	}
	return data
}

// Profile score weights. Followers cap at 40, public repos at 20, bio and
// company are worth 20 each; location and website are tracked but score 0.
const (
	scoreFollowersAny  = 20
	scoreFollowersTen  = 10
	scoreFollowersMany = 10
	scoreReposAny      = 15
	scoreReposFive     = 5
	scoreBio           = 20
	scoreCompany       = 20
)

// ExtractProfile computes the additive 0-100 profile completeness score.
func ExtractProfile(s *models.ContributorActivitySnapshot) models.ProfileData {
	p := s.Profile
	data := models.ProfileData{
		Followers:   p.Followers,
		PublicRepos: p.PublicRepos,
		HasBio:      strings.TrimSpace(p.Bio) != "",
		HasCompany:  strings.TrimSpace(p.Company) != "",
		HasLocation: strings.TrimSpace(p.Location) != "",
		HasWebsite:  strings.TrimSpace(p.WebsiteURL) != "",
	}

	if p.Followers > 0 {
		data.Score += scoreFollowersAny
	}
	if p.Followers >= 10 {
		data.Score += scoreFollowersTen
	}
	if p.Followers >= 50 {
		data.Score += scoreFollowersMany
	}
	if p.PublicRepos > 0 {
		data.Score += scoreReposAny
	}
	if p.PublicRepos >= 5 {
		data.Score += scoreReposFive
	}
	if data.HasBio {
		data.Score += scoreBio
	}
	if data.HasCompany {
		data.Score += scoreCompany
	}
	return data
}
