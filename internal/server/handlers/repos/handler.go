package repos

import (
	"errors"
	"fmt"

	"github.com/gitscope/gitscope/internal/git"
	"github.com/gitscope/gitscope/internal/repos"
	"github.com/gitscope/gitscope/internal/server/validation"
	"github.com/gitscope/gitscope/internal/snapshots"
	"github.com/go-core-fx/fiberfx/handler"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/samber/lo"
	"go.uber.org/zap"
)

type Handler struct {
	reposSvc     *repos.Service
	snapshotsSvc *snapshots.Service

	validator *validator.Validate
	logger    *zap.Logger
}

func NewHandler(
	reposSvc *repos.Service,
	snapshotsSvc *snapshots.Service,
	validator *validator.Validate,
	logger *zap.Logger,
) handler.Handler {
	return &Handler{
		reposSvc:     reposSvc,
		snapshotsSvc: snapshotsSvc,

		validator: validator,
		logger:    logger,
	}
}

// Register implements handler.Handler.
func (h *Handler) Register(r fiber.Router) {
	r = r.Group("/repos")

	r.Use(h.errorsHandler)
	r.Post("/", validation.DecorateWithBodyEx(h.validator, h.post))
	r.Get("/", h.list)
	r.Get("/:id", h.get)
	r.Patch("/:id", validation.DecorateWithBodyEx(h.validator, h.patch))
	r.Delete("/:id", h.delete)
	r.Get("/:id/status", h.status)
	r.Get("/:id/branches", h.branches)
	r.Get("/:id/log", validation.DecorateWithQueryEx(h.validator, h.log))
	r.Get("/:id/blame", validation.DecorateWithQueryEx(h.validator, h.blame))
	r.Post("/:id/snapshots", h.capture)
	r.Get("/:id/snapshots", h.listSnapshots)
	r.Get("/:id/snapshots/latest", h.latestSnapshot)
	r.Delete("/:id/snapshots", validation.DecorateWithQueryEx(h.validator, h.pruneSnapshots))
}

//	@Summary		Register a repository
//	@Description	Register a local working copy under a unique name
//	@Tags			repos
//	@Accept			json
//	@Produce		json
//	@Param			repo	body		POSTRequest	true	"Repository registration request"
//	@Success		201		{object}	RepoResponse
//	@Failure		400		{object}	fiberfx.ErrorResponse
//	@Failure		404		{object}	fiberfx.ErrorResponse
//	@Failure		409		{object}	fiberfx.ErrorResponse
//	@Router			/repos [post]
//
// Register a repository.
func (h *Handler) post(c *fiber.Ctx, req *POSTRequest) error {
	draft := repos.RepoDraft{
		Name:         req.Name,
		Description:  req.Description,
		Path:         req.Path,
		AllowMissing: req.AllowMissing,
	}

	repo, err := h.reposSvc.Register(c.Context(), draft)
	if err != nil {
		return fmt.Errorf("failed to register repository: %w", err)
	}

	response := h.toResponse(repo)
	return c.Status(fiber.StatusCreated).JSON(response)
}

//	@Summary		List registered repositories
//	@Description	Retrieve all registered working copies
//	@Tags			repos
//	@Accept			json
//	@Produce		json
//	@Success		200	{array}	RepoResponse
//	@Router			/repos [get]
//
// List registered repositories.
func (h *Handler) list(c *fiber.Ctx) error {
	repositories, err := h.reposSvc.List(c.Context())
	if err != nil {
		return fmt.Errorf("failed to list repositories: %w", err)
	}

	responses := lo.Map(repositories, func(repo repos.Repo, _ int) RepoResponse {
		return h.toResponse(&repo)
	})

	return c.JSON(responses)
}

//	@Summary		Get a registration
//	@Description	Retrieve a registered repository by ID
//	@Tags			repos
//	@Accept			json
//	@Produce		json
//	@Param			id	path		string	true	"Registration ID"
//	@Success		200	{object}	RepoResponse
//	@Failure		400	{object}	fiberfx.ErrorResponse
//	@Failure		404	{object}	fiberfx.ErrorResponse
//	@Router			/repos/{id} [get]
//
// Get a registration.
func (h *Handler) get(c *fiber.Ctx) error {
	id, err := getRepoID(c)
	if err != nil {
		return err
	}

	repo, err := h.reposSvc.Get(c.Context(), id)
	if err != nil {
		return fmt.Errorf("failed to get repository: %w", err)
	}

	response := h.toResponse(repo)
	return c.JSON(response)
}

//	@Summary		Update a registration
//	@Description	Update mutable fields of a registration. Name and path cannot change.
//	@Tags			repos
//	@Accept			json
//	@Produce		json
//	@Param			id		path		string			true	"Registration ID"
//	@Param			repo	body		PATCHRequest	true	"Registration update request"
//	@Success		200		{object}	RepoResponse
//	@Failure		400		{object}	fiberfx.ErrorResponse
//	@Failure		404		{object}	fiberfx.ErrorResponse
//	@Router			/repos/{id} [patch]
//
// Update a registration.
func (h *Handler) patch(c *fiber.Ctx, req *PATCHRequest) error {
	id, err := getRepoID(c)
	if err != nil {
		return err
	}

	updater := func(repo *repos.Repo) error {
		if req.Description != nil {
			repo.Description = *req.Description
		}
		return nil
	}

	err = h.reposSvc.Update(c.Context(), id, updater)
	if err != nil {
		return fmt.Errorf("failed to update repository: %w", err)
	}

	return h.get(c)
}

//	@Summary		Remove a registration
//	@Description	Remove a registration. The working copy on disk is left alone.
//	@Tags			repos
//	@Accept			json
//	@Produce		json
//	@Param			id	path	string	true	"Registration ID"
//	@Success		204
//	@Failure		400	{object}	fiberfx.ErrorResponse
//	@Failure		404	{object}	fiberfx.ErrorResponse
//	@Router			/repos/{id} [delete]
//
// Remove a registration.
func (h *Handler) delete(c *fiber.Ctx) error {
	id, err := getRepoID(c)
	if err != nil {
		return err
	}

	err = h.reposSvc.Remove(c.Context(), id)
	if err != nil {
		return fmt.Errorf("failed to remove repository: %w", err)
	}

	return c.SendStatus(fiber.StatusNoContent)
}

//	@Summary		Get working-directory status
//	@Description	Build the current working-directory status of a registered repository
//	@Tags			repos
//	@Accept			json
//	@Produce		json
//	@Param			id	path		string	true	"Registration ID"
//	@Success		200	{object}	StatusResponse
//	@Failure		400	{object}	fiberfx.ErrorResponse
//	@Failure		404	{object}	fiberfx.ErrorResponse
//	@Router			/repos/{id}/status [get]
//
// Get working-directory status.
func (h *Handler) status(c *fiber.Ctx) error {
	id, err := getRepoID(c)
	if err != nil {
		return err
	}

	status, err := h.reposSvc.Status(c.Context(), id)
	if err != nil {
		return fmt.Errorf("failed to get status: %w", err)
	}

	response := newStatusResponse(status)
	return c.JSON(response)
}

//	@Summary		List branches
//	@Description	List local and remote-tracking branches of a registered repository
//	@Tags			repos
//	@Accept			json
//	@Produce		json
//	@Param			id	path	string	true	"Registration ID"
//	@Success		200	{array}	BranchResponse
//	@Failure		400	{object}	fiberfx.ErrorResponse
//	@Failure		404	{object}	fiberfx.ErrorResponse
//	@Router			/repos/{id}/branches [get]
//
// List branches.
func (h *Handler) branches(c *fiber.Ctx) error {
	id, err := getRepoID(c)
	if err != nil {
		return err
	}

	branches, err := h.reposSvc.Branches(c.Context(), id)
	if err != nil {
		return fmt.Errorf("failed to list branches: %w", err)
	}

	responses := lo.Map(branches, func(branch git.Branch, _ int) BranchResponse {
		return newBranchResponse(branch)
	})

	return c.JSON(responses)
}

//	@Summary		Walk commit history
//	@Description	Walk commit history with per-commit file changes
//	@Tags			repos
//	@Accept			json
//	@Produce		json
//	@Param			id			path	string	true	"Registration ID"
//	@Param			ref			query	string	false	"Revision to start from, defaults to HEAD"
//	@Param			max_count	query	int		false	"Maximum number of commits"
//	@Success		200			{array}	CommitWithChangesResponse
//	@Failure		400			{object}	fiberfx.ErrorResponse
//	@Failure		404			{object}	fiberfx.ErrorResponse
//	@Router			/repos/{id}/log [get]
//
// Walk commit history.
func (h *Handler) log(c *fiber.Ctx, query *LogQuery) error {
	id, err := getRepoID(c)
	if err != nil {
		return err
	}

	commits, err := h.reposSvc.Log(c.Context(), id, repos.LogOptions{
		Ref:      query.Ref,
		MaxCount: query.MaxCount,
	})
	if err != nil {
		return fmt.Errorf("failed to walk history: %w", err)
	}

	responses := lo.Map(commits, func(commit git.CommitWithChanges, _ int) CommitWithChangesResponse {
		return newCommitWithChangesResponse(commit)
	})

	return c.JSON(responses)
}

//	@Summary		Blame a file
//	@Description	Attribute each line of a file to the commit that introduced it
//	@Tags			repos
//	@Accept			json
//	@Produce		json
//	@Param			id		path		string	true	"Registration ID"
//	@Param			file	query		string	true	"File path relative to the repository root"
//	@Param			ref		query		string	false	"Revision to blame at, defaults to HEAD"
//	@Success		200		{object}	BlameResponse
//	@Failure		400		{object}	fiberfx.ErrorResponse
//	@Failure		404		{object}	fiberfx.ErrorResponse
//	@Router			/repos/{id}/blame [get]
//
// Blame a file.
func (h *Handler) blame(c *fiber.Ctx, query *BlameQuery) error {
	id, err := getRepoID(c)
	if err != nil {
		return err
	}

	blame, err := h.reposSvc.Blame(c.Context(), id, repos.BlameOptions{
		File: query.File,
		Ref:  query.Ref,
	})
	if err != nil {
		return fmt.Errorf("failed to blame file: %w", err)
	}

	response := newBlameResponse(blame)
	return c.JSON(response)
}

func (h *Handler) errorsHandler(c *fiber.Ctx) error {
	err := c.Next()
	if err == nil {
		return nil
	}

	switch {
	case errors.Is(err, repos.ErrNotFound),
		errors.Is(err, git.ErrRepositoryNotFound),
		errors.Is(err, git.ErrBranchNotFound),
		errors.Is(err, git.ErrFileNotFound):
		return fiber.NewError(fiber.StatusNotFound, err.Error())
	case errors.Is(err, snapshots.ErrNoSnapshots):
		return fiber.NewError(fiber.StatusNotFound, err.Error())
	case errors.Is(err, repos.ErrConflict):
		return fiber.NewError(fiber.StatusConflict, err.Error())
	case errors.Is(err, repos.ErrNotAllowed):
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	case errors.Is(err, git.ErrTimeout):
		return fiber.NewError(fiber.StatusGatewayTimeout, err.Error())
	}

	return err //nolint:wrapcheck //already wrapped
}

func (h *Handler) toResponse(repo *repos.Repo) RepoResponse {
	return RepoResponse{
		Name:        repo.Name,
		Description: repo.Description,
		Path:        repo.Path,

		ID: repo.ID,

		CreatedAt: repo.CreatedAt,
		UpdatedAt: repo.UpdatedAt,
	}
}
