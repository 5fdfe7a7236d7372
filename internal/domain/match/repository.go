package match

import "context"

type Repository interface {
	List(ctx context.Context) ([]Match, error)
	GetByID(ctx context.Context, matchID int) (Match, bool, error)

	// SquadByTeam returns the static roster for a team name, used to build
	// and validate man-of-the-match options.
	SquadByTeam(ctx context.Context, teamName string) ([]Player, error)
}
