package services

import (
	"github.com/courtside/sports-platform/models"
	"github.com/courtside/sports-platform/storage"
)

// --- Общие хелперы ---

func leagueInfoWithUploaderLogo(m models.TeamLeagueMembership, uploader storage.FileUploader) LeagueInfo {
	info := LeagueInfoFromMembership(m)
	if m.League != nil && m.League.LogoKey != nil && *m.League.LogoKey != "" && uploader != nil {
		url := uploader.GetPublicURL(*m.League.LogoKey)
		if url != "" {
			info.LogoURL = &url
		}
	}
	return info
}

func populateLeagueLogoURL(league *models.League, uploader storage.FileUploader) {
	if league != nil && league.LogoKey != nil && *league.LogoKey != "" && uploader != nil {
		url := uploader.GetPublicURL(*league.LogoKey)
		if url != "" {
			league.LogoURL = &url
		}
	}
}
