package metrics

import "github.com/prgate/prgate/internal/models"

// Reaction emoji classification. Everything outside the two sets is neutral.
var (
	positiveReactions = map[string]bool{
		"THUMBS_UP": true,
		"HEART":     true,
		"ROCKET":    true,
		"HOORAY":    true,
	}
	negativeReactions = map[string]bool{
		"THUMBS_DOWN": true,
		"CONFUSED":    true,
	}
)

// ExtractReactions classifies every reaction received on the contributor's
// comments. With no reactions at all the ratio defaults to 0.5, a neutral
// prior that avoids framing silence as either approval or rejection.
func ExtractReactions(s *models.ContributorActivitySnapshot) models.ReactionData {
	var data models.ReactionData

	for _, comment := range s.IssueComments {
		for _, r := range comment.Reactions {
			switch {
			case positiveReactions[r.Content]:
				data.Positive++
			case negativeReactions[r.Content]:
				data.Negative++
			default:
				data.Neutral++
			}
		}
	}

	data.Total = data.Positive + data.Negative + data.Neutral
	if data.Total > 0 {
		data.PositiveRatio = float64(data.Positive) / float64(data.Total)
	} else {
		data.PositiveRatio = 0.5
	}
	return data
}

// ExtractCommentActivity summarizes commenting volume and how often comments
// draw any reaction.
func ExtractCommentActivity(s *models.ContributorActivitySnapshot) models.CommentActivityData {
	data := models.CommentActivityData{TotalComments: len(s.IssueComments)}

	var reactionSum int
	for _, comment := range s.IssueComments {
		if len(comment.Reactions) > 0 {
			data.CommentsWithReactions++
		}
		reactionSum += len(comment.Reactions)
	}
	if data.TotalComments > 0 {
		data.AverageReactions = float64(reactionSum) / float64(data.TotalComments)
	}
	return data
}
