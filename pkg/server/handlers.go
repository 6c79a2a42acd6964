package server

import (
	"boxbox/handler"
)

type Handlers struct {
	Auth   *handler.Auth
	Race   *handler.Race
	User   *handler.User
	Follow *handler.Follow
	Review *handler.Review
	Like   *handler.Like
	Feed   *handler.Feed
	Health *handler.Health
}
