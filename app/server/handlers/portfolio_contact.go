package handlers

import (
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
	"net/http"
	"portfolio-api/app/server/models"
	"strings"
)

func contactMapFields(req *ContactInput, contact *models.Contact) {
	contact.Name = req.Name
	contact.Email = strings.TrimSpace(req.Email)
	contact.Message = req.Message
}

func contactInfo(contact *models.Contact) *ContactInfo {
	return &ContactInfo{
		ID:      contact.ID,
		Name:    contact.Name,
		Email:   contact.Email,
		Message: contact.Message,
	}
}

func (a *App) ContactCreate(c echo.Context) error {
	var req ContactInput
	if ok, err := a.bindPortfolioInput(c, &req); !ok {
		return err
	}

	var contact models.Contact
	contactMapFields(&req, &contact)

	if err := a.pdb.WithContext(c.Request().Context()).Create(&contact).Error; err != nil {
		a.l.Error("failed to create contact", zap.Uint("id", contact.ID), zap.Error(err))
		return a.er(c, http.StatusInternalServerError)
	}

	return c.JSON(http.StatusCreated, contactInfo(&contact))
}

func (a *App) ContactList(c echo.Context) error {
	contacts, err := listPortfolioItems[models.Contact](c.Request().Context(), a.pdb)
	if err != nil {
		a.l.Error("failed to get contact list", zap.Error(err))
		return a.er(c, http.StatusInternalServerError)
	}

	res := []*ContactInfo{}
	for i := range contacts {
		res = append(res, contactInfo(&contacts[i]))
	}

	return c.JSON(http.StatusOK, res)
}

func (a *App) ContactGet(c echo.Context) error {
	id, ok, err := a.portfolioID(c)
	if !ok {
		return err
	}

	contact, err := findPortfolioItem[models.Contact](c.Request().Context(), a.pdb, id)
	if err != nil {
		return a.dbEr(c, err, "Contact not found", zap.Uint("id", id))
	}

	return c.JSON(http.StatusOK, contactInfo(contact))
}

func (a *App) ContactUpdate(c echo.Context) error {
	id, ok, err := a.portfolioID(c)
	if !ok {
		return err
	}

	var req ContactInput
	if ok, err := a.bindPortfolioInput(c, &req); !ok {
		return err
	}

	rctx := c.Request().Context()

	contact, err := findPortfolioItem[models.Contact](rctx, a.pdb, id)
	if err != nil {
		return a.dbEr(c, err, "Contact not found", zap.Uint("id", id))
	}

	contactMapFields(&req, contact)

	if err := a.pdb.WithContext(rctx).Save(contact).Error; err != nil {
		// 联系人信息包含个人数据，不记录内容
		a.l.Error("failed to update contact", zap.Uint("id", id), zap.Error(err))
		return a.er(c, http.StatusInternalServerError)
	}

	return c.JSON(http.StatusOK, contactInfo(contact))
}

func (a *App) ContactDelete(c echo.Context) error {
	return a.portfolioDelete(c, "Contact", deletePortfolioItem[models.Contact])
}
