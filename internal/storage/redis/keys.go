package redis

import (
	"fmt"

	"github.com/arenahq/arena/internal/model"
)

// Key prefix for all platform data
const keyPrefix = "arena"

// userKey returns the Redis key for a User
func userKey(id model.UserID) string {
	return fmt.Sprintf("%s:user:%s", keyPrefix, id)
}

// emailIndexKey returns the Redis key for the email -> user_id index
func emailIndexKey(email string) string {
	return fmt.Sprintf("%s:idx:email:%s", keyPrefix, email)
}

// userSetKey returns the Redis key for the SET of all user IDs
func userSetKey() string {
	return fmt.Sprintf("%s:idx:users", keyPrefix)
}

// accountKey returns the Redis key for an Account, keyed by email
func accountKey(email string) string {
	return fmt.Sprintf("%s:account:%s", keyPrefix, email)
}

// sessionKey returns the Redis key for a Session
func sessionKey(token string) string {
	return fmt.Sprintf("%s:session:%s", keyPrefix, token)
}

// gameKey returns the Redis key for a catalog Game
func gameKey(id model.GameID) string {
	return fmt.Sprintf("%s:game:%s", keyPrefix, id)
}

// gameSetKey returns the Redis key for the SET of all game IDs
func gameSetKey() string {
	return fmt.Sprintf("%s:idx:games", keyPrefix)
}

// tournamentKey returns the Redis key for a Tournament
func tournamentKey(id model.TournamentID) string {
	return fmt.Sprintf("%s:tournament:%s", keyPrefix, id)
}

// tournamentSetKey returns the Redis key for the SET of all tournament IDs
func tournamentSetKey() string {
	return fmt.Sprintf("%s:idx:tournaments", keyPrefix)
}

// matchKey returns the Redis key for a Match
func matchKey(id model.MatchID) string {
	return fmt.Sprintf("%s:match:%s", keyPrefix, id)
}

// matchSetKey returns the Redis key for the SET of all match IDs
func matchSetKey() string {
	return fmt.Sprintf("%s:idx:matches", keyPrefix)
}

// matchesForTournamentKey returns the Redis key for the SET of matches in a tournament
func matchesForTournamentKey(id model.TournamentID) string {
	return fmt.Sprintf("%s:idx:matches_for_tournament:%s", keyPrefix, id)
}
