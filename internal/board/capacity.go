package board

import "github.com/Pranshu640/Kanban-Ticketing-System/internal/models"

// CanAccept reports whether column may receive a ticket coming from
// sourceStatus while it currently holds currentCount tickets. Drops into the
// ticket's own column are always refused, and a limited column refuses once
// it is at or above its limit.
func CanAccept(column models.Column, currentCount int, sourceStatus models.Status) bool {
	if sourceStatus == column.Status {
		return false
	}
	if column.Limit == nil {
		return true
	}
	return currentCount < *column.Limit
}
