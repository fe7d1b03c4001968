package services

import (
	"github.com/justplay-app/league-manager/models"
	"github.com/justplay-app/league-manager/storage"
)

// Avatar content types accepted for upload, mapped to object key extensions.
var avatarExtensions = map[string]string{
	"image/jpeg": "jpg",
	"image/png":  "png",
	"image/webp": "webp",
}

func populateLeagueAvatarURL(league *models.League, uploader storage.FileUploader) {
	if league == nil || league.AvatarKey == nil || uploader == nil {
		return
	}
	url := uploader.GetPublicURL(*league.AvatarKey)
	if url != "" {
		league.AvatarURL = &url
	}
}

func populateTeamAvatarURL(team *models.Team, uploader storage.FileUploader) {
	if team == nil || team.AvatarKey == nil || uploader == nil {
		return
	}
	url := uploader.GetPublicURL(*team.AvatarKey)
	if url != "" {
		team.AvatarURL = &url
	}
}

func populatePlayerAvatarURL(player *models.Player, uploader storage.FileUploader) {
	if player == nil || player.AvatarKey == nil || uploader == nil {
		return
	}
	url := uploader.GetPublicURL(*player.AvatarKey)
	if url != "" {
		player.AvatarURL = &url
	}
}

func membersToValues(members []*models.Member) []models.Member {
	result := make([]models.Member, 0, len(members))
	for _, m := range members {
		if m != nil {
			result = append(result, *m)
		}
	}
	return result
}

func playersToValues(players []*models.Player, uploader storage.FileUploader) []models.Player {
	result := make([]models.Player, 0, len(players))
	for _, p := range players {
		if p == nil {
			continue
		}
		populatePlayerAvatarURL(p, uploader)
		result = append(result, *p)
	}
	return result
}
