package handlers

import (
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
	"net/http"
	"portfolio-api/app/server/models"
)

func projectMapFields(req *ProjectInput, project *models.Project) {
	project.Title = req.Title
	project.Description = req.Description
	project.Link = req.Link
}

func projectInfo(project *models.Project) *ProjectInfo {
	return &ProjectInfo{
		ID:          project.ID,
		Title:       project.Title,
		Description: project.Description,
		Link:        project.Link,
	}
}

func (a *App) ProjectCreate(c echo.Context) error {
	var req ProjectInput
	if ok, err := a.bindPortfolioInput(c, &req); !ok {
		return err
	}

	var project models.Project
	projectMapFields(&req, &project)

	if err := a.pdb.WithContext(c.Request().Context()).Create(&project).Error; err != nil {
		a.l.Error("failed to create project", zap.Any("project", project), zap.Error(err))
		return a.er(c, http.StatusInternalServerError)
	}

	return c.JSON(http.StatusCreated, projectInfo(&project))
}

func (a *App) ProjectList(c echo.Context) error {
	projects, err := listPortfolioItems[models.Project](c.Request().Context(), a.pdb)
	if err != nil {
		a.l.Error("failed to get project list", zap.Error(err))
		return a.er(c, http.StatusInternalServerError)
	}

	res := []*ProjectInfo{}
	for i := range projects {
		res = append(res, projectInfo(&projects[i]))
	}

	return c.JSON(http.StatusOK, res)
}

func (a *App) ProjectGet(c echo.Context) error {
	id, ok, err := a.portfolioID(c)
	if !ok {
		return err
	}

	project, err := findPortfolioItem[models.Project](c.Request().Context(), a.pdb, id)
	if err != nil {
		return a.dbEr(c, err, "Project not found", zap.Uint("id", id))
	}

	return c.JSON(http.StatusOK, projectInfo(project))
}

func (a *App) ProjectUpdate(c echo.Context) error {
	id, ok, err := a.portfolioID(c)
	if !ok {
		return err
	}

	var req ProjectInput
	if ok, err := a.bindPortfolioInput(c, &req); !ok {
		return err
	}

	rctx := c.Request().Context()

	project, err := findPortfolioItem[models.Project](rctx, a.pdb, id)
	if err != nil {
		return a.dbEr(c, err, "Project not found", zap.Uint("id", id))
	}

	projectMapFields(&req, project)

	if err := a.pdb.WithContext(rctx).Save(project).Error; err != nil {
		a.l.Error("failed to update project", zap.Any("project", project), zap.Error(err))
		return a.er(c, http.StatusInternalServerError)
	}

	return c.JSON(http.StatusOK, projectInfo(project))
}

func (a *App) ProjectDelete(c echo.Context) error {
	return a.portfolioDelete(c, "Project", deletePortfolioItem[models.Project])
}
