// Package access holds the board permission predicates. Both are pure and
// compare stable identifiers; the caller is responsible for passing
// up-to-date board data.
package access

import "github.com/taskan-dev/taskan/internal/domain"

// CanAccess reports whether userId may read or write the board. The owner
// is authorized even when absent from the member set.
func CanAccess(board *domain.Board, userId domain.UserId) bool {
	if board.OwnerId == userId {
		return true
	}
	return board.HasMember(userId)
}

// CanInvite reports whether userId may invite members. Stricter than
// CanAccess: only the owner invites.
func CanInvite(board *domain.Board, userId domain.UserId) bool {
	return board.OwnerId == userId
}
