package handlers

import (
	"context"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
	"gorm.io/gorm"
	"net/http"
	"portfolio-api/app/server/models"
	"portfolio-api/app/server/utils"
)

// 方法不能有类型形参，所以下面这些不能用 (a *App)

type portfolioModel interface {
	models.Project | models.BlogPost | models.Contact
}

func findPortfolioItem[M portfolioModel](ctx context.Context, db *gorm.DB, id uint) (*M, error) {
	var item M
	if err := db.WithContext(ctx).First(&item, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

func listPortfolioItems[M portfolioModel](ctx context.Context, db *gorm.DB) ([]M, error) {
	items := []M{}
	if err := db.WithContext(ctx).Order("id ASC").Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func deletePortfolioItem[M portfolioModel](ctx context.Context, db *gorm.DB, id uint) error {
	var item M
	res := db.WithContext(ctx).Delete(&item, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// portfolioID 解析路径里的 id ，失败时已经写好了响应
func (a *App) portfolioID(c echo.Context) (uint, bool, error) {
	id, err := utils.ParseID(c.Param("id"))
	if err != nil {
		return 0, false, a.er(c, http.StatusBadRequest, "Invalid id")
	}
	return id, true, nil
}

// bindPortfolioInput 绑定并校验请求体，失败时已经写好了响应
func (a *App) bindPortfolioInput(c echo.Context, req interface{ Validate() error }) (bool, error) {
	if err := c.Bind(req); err != nil {
		return false, a.er(c, http.StatusBadRequest, "Invalid request body")
	}
	if err := req.Validate(); err != nil {
		return false, a.er(c, http.StatusBadRequest, err.Error())
	}
	return true, nil
}

func (a *App) portfolioDelete(c echo.Context, kind string, del func(ctx context.Context, db *gorm.DB, id uint) error) error {
	id, ok, err := a.portfolioID(c)
	if !ok {
		return err
	}

	if err := del(c.Request().Context(), a.pdb, id); err != nil {
		return a.dbEr(c, err, kind+" not found", zap.String("kind", kind), zap.Uint("id", id))
	}

	return c.JSON(http.StatusOK, &Message{Message: kind + " deleted"})
}
