package repos

import (
	"fmt"

	"github.com/gitscope/gitscope/internal/snapshots"
	"github.com/gofiber/fiber/v2"
	"github.com/samber/lo"
)

//	@Summary		Capture a status snapshot
//	@Description	Record the current working-directory status. When the status equals the latest recorded snapshot nothing new is stored.
//	@Tags			snapshots
//	@Accept			json
//	@Produce		json
//	@Param			id	path		string	true	"Registration ID"
//	@Success		201	{object}	CaptureResponse
//	@Failure		400	{object}	fiberfx.ErrorResponse
//	@Failure		404	{object}	fiberfx.ErrorResponse
//	@Router			/repos/{id}/snapshots [post]
//
// Capture a status snapshot.
func (h *Handler) capture(c *fiber.Ctx) error {
	id, err := getRepoID(c)
	if err != nil {
		return err
	}

	snapshot, created, err := h.snapshotsSvc.Capture(c.Context(), id)
	if err != nil {
		return fmt.Errorf("failed to capture snapshot: %w", err)
	}

	response := CaptureResponse{
		SnapshotResponse: newSnapshotResponse(snapshot),
		Created:          created,
	}

	status := fiber.StatusCreated
	if !created {
		status = fiber.StatusOK
	}

	return c.Status(status).JSON(response)
}

//	@Summary		List status snapshots
//	@Description	Retrieve the recorded status history of a repository, oldest first
//	@Tags			snapshots
//	@Accept			json
//	@Produce		json
//	@Param			id	path	string	true	"Registration ID"
//	@Success		200	{array}	SnapshotResponse
//	@Failure		400	{object}	fiberfx.ErrorResponse
//	@Failure		404	{object}	fiberfx.ErrorResponse
//	@Router			/repos/{id}/snapshots [get]
//
// List status snapshots.
func (h *Handler) listSnapshots(c *fiber.Ctx) error {
	id, err := getRepoID(c)
	if err != nil {
		return err
	}

	result, err := h.snapshotsSvc.ListByRepo(c.Context(), id)
	if err != nil {
		return fmt.Errorf("failed to list snapshots: %w", err)
	}

	responses := lo.Map(result, func(snapshot snapshots.Snapshot, _ int) SnapshotResponse {
		return newSnapshotResponse(&snapshot)
	})

	return c.JSON(responses)
}

//	@Summary		Get the latest snapshot
//	@Description	Retrieve the most recent status snapshot of a repository
//	@Tags			snapshots
//	@Accept			json
//	@Produce		json
//	@Param			id	path		string	true	"Registration ID"
//	@Success		200	{object}	SnapshotResponse
//	@Failure		400	{object}	fiberfx.ErrorResponse
//	@Failure		404	{object}	fiberfx.ErrorResponse
//	@Router			/repos/{id}/snapshots/latest [get]
//
// Get the latest snapshot.
func (h *Handler) latestSnapshot(c *fiber.Ctx) error {
	id, err := getRepoID(c)
	if err != nil {
		return err
	}

	snapshot, err := h.snapshotsSvc.Latest(c.Context(), id)
	if err != nil {
		return fmt.Errorf("failed to get latest snapshot: %w", err)
	}

	response := newSnapshotResponse(snapshot)
	return c.JSON(response)
}

//	@Summary		Prune status snapshots
//	@Description	Drop all but the most recent snapshots of a repository
//	@Tags			snapshots
//	@Accept			json
//	@Produce		json
//	@Param			id		path		string	true	"Registration ID"
//	@Param			keep	query		int		false	"Number of recent snapshots to keep"
//	@Success		200		{object}	PruneResponse
//	@Failure		400		{object}	fiberfx.ErrorResponse
//	@Router			/repos/{id}/snapshots [delete]
//
// Prune status snapshots.
func (h *Handler) pruneSnapshots(c *fiber.Ctx, query *PruneQuery) error {
	id, err := getRepoID(c)
	if err != nil {
		return err
	}

	deleted, err := h.snapshotsSvc.Prune(c.Context(), id, query.Keep)
	if err != nil {
		return fmt.Errorf("failed to prune snapshots: %w", err)
	}

	return c.JSON(PruneResponse{Deleted: deleted})
}
