package handlers

import (
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
	"net/http"
	"portfolio-api/app/server/models"
)

func blogPostMapFields(req *BlogPostInput, post *models.BlogPost) {
	post.Title = req.Title
	post.Content = req.Content
}

func blogPostInfo(post *models.BlogPost) *BlogPostInfo {
	return &BlogPostInfo{
		ID:      post.ID,
		Title:   post.Title,
		Content: post.Content,
	}
}

func (a *App) BlogPostCreate(c echo.Context) error {
	var req BlogPostInput
	if ok, err := a.bindPortfolioInput(c, &req); !ok {
		return err
	}

	var post models.BlogPost
	blogPostMapFields(&req, &post)

	if err := a.pdb.WithContext(c.Request().Context()).Create(&post).Error; err != nil {
		a.l.Error("failed to create blog post", zap.Any("post", post), zap.Error(err))
		return a.er(c, http.StatusInternalServerError)
	}

	return c.JSON(http.StatusCreated, blogPostInfo(&post))
}

func (a *App) BlogPostList(c echo.Context) error {
	posts, err := listPortfolioItems[models.BlogPost](c.Request().Context(), a.pdb)
	if err != nil {
		a.l.Error("failed to get blog post list", zap.Error(err))
		return a.er(c, http.StatusInternalServerError)
	}

	res := []*BlogPostInfo{}
	for i := range posts {
		res = append(res, blogPostInfo(&posts[i]))
	}

	return c.JSON(http.StatusOK, res)
}

func (a *App) BlogPostGet(c echo.Context) error {
	id, ok, err := a.portfolioID(c)
	if !ok {
		return err
	}

	post, err := findPortfolioItem[models.BlogPost](c.Request().Context(), a.pdb, id)
	if err != nil {
		return a.dbEr(c, err, "BlogPost not found", zap.Uint("id", id))
	}

	return c.JSON(http.StatusOK, blogPostInfo(post))
}

func (a *App) BlogPostUpdate(c echo.Context) error {
	id, ok, err := a.portfolioID(c)
	if !ok {
		return err
	}

	var req BlogPostInput
	if ok, err := a.bindPortfolioInput(c, &req); !ok {
		return err
	}

	rctx := c.Request().Context()

	post, err := findPortfolioItem[models.BlogPost](rctx, a.pdb, id)
	if err != nil {
		return a.dbEr(c, err, "BlogPost not found", zap.Uint("id", id))
	}

	blogPostMapFields(&req, post)

	if err := a.pdb.WithContext(rctx).Save(post).Error; err != nil {
		a.l.Error("failed to update blog post", zap.Any("post", post), zap.Error(err))
		return a.er(c, http.StatusInternalServerError)
	}

	return c.JSON(http.StatusOK, blogPostInfo(post))
}

func (a *App) BlogPostDelete(c echo.Context) error {
	return a.portfolioDelete(c, "BlogPost", deletePortfolioItem[models.BlogPost])
}
