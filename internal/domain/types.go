package domain

import "github.com/google/uuid"

type (
	Email  = string
	UserId = uuid.UUID

	BoardId   = uuid.UUID
	BoardName = string

	ListId   = uuid.UUID
	ListName = string

	CardId    = uuid.UUID
	CardTitle = string
)
