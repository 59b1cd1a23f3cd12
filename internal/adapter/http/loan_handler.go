package http

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	loanDomain "loan-management-service/internal/domain/loan"
	"loan-management-service/internal/usecase/loan"

	"github.com/labstack/echo/v4"
)

type LoanHandler struct{ uc *loan.Usecase }

func NewLoanHandler(uc *loan.Usecase) *LoanHandler { return &LoanHandler{uc: uc} }

type searchLoansReq struct {
	BorrowerName string `query:"borrowerName"`
	Status       string `query:"status" validate:"omitempty,oneof=PENDING APPROVED REJECTED PAID_OFF"`
	LoanType     string `query:"loanType" validate:"omitempty,oneof=PERSONAL BUSINESS MORTGAGE AUTO"`
}

func (h *LoanHandler) ListLoans(c echo.Context) error {
	dtos, err := h.uc.List(c.Request().Context())
	if err != nil {
		return internalError(c, err)
	}
	return c.JSON(http.StatusOK, dtos)
}

func (h *LoanHandler) GetLoan(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid loan id"})
	}
	dto, err := h.uc.Get(c.Request().Context(), id)
	if errors.Is(err, loanDomain.ErrNotFound) {
		return notFound(c, id)
	}
	if err != nil {
		return internalError(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}

func (h *LoanHandler) CreateLoan(c echo.Context) error {
	var req loan.LoanInput
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return validationFailed(c, err)
	}
	dto, err := h.uc.Create(c.Request().Context(), req)
	if errors.Is(err, loan.ErrInvalidInput) {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
	}
	if err != nil {
		return internalError(c, err)
	}
	c.Response().Header().Set(echo.HeaderLocation, dto.Links["self"])
	return c.JSON(http.StatusCreated, dto)
}

func (h *LoanHandler) UpdateLoan(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid loan id"})
	}
	var req loan.LoanInput
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return validationFailed(c, err)
	}
	dto, err := h.uc.Update(c.Request().Context(), id, req)
	if errors.Is(err, loan.ErrInvalidInput) {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
	}
	if errors.Is(err, loanDomain.ErrNotFound) {
		return notFound(c, id)
	}
	if err != nil {
		return internalError(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}

func (h *LoanHandler) DeleteLoan(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid loan id"})
	}
	err = h.uc.Delete(c.Request().Context(), id)
	if errors.Is(err, loanDomain.ErrNotFound) {
		return notFound(c, id)
	}
	if err != nil {
		return internalError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

func (h *LoanHandler) SearchLoans(c echo.Context) error {
	var req searchLoansReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid query"})
	}
	if err := c.Validate(&req); err != nil {
		return validationFailed(c, err)
	}
	dtos, err := h.uc.Search(c.Request().Context(), loan.SearchFilter{
		BorrowerName: req.BorrowerName,
		Status:       req.Status,
		LoanType:     req.LoanType,
	})
	if err != nil {
		return internalError(c, err)
	}
	return c.JSON(http.StatusOK, dtos)
}

func (h *LoanHandler) LoanStats(c echo.Context) error {
	stats, err := h.uc.Stats(c.Request().Context())
	if err != nil {
		return internalError(c, err)
	}
	return c.JSON(http.StatusOK, stats)
}

func parseID(c echo.Context) (uint64, error) {
	return strconv.ParseUint(c.Param("id"), 10, 64)
}

func notFound(c echo.Context, id uint64) error {
	return c.JSON(http.StatusNotFound, ErrorResponse{
		Error: fmt.Sprintf("loan not found with id: %d", id),
	})
}

func validationFailed(c echo.Context, err error) error {
	return c.JSON(http.StatusBadRequest, ErrorResponse{
		Error:   "validation failed",
		Details: ToFieldErrors(err),
	})
}

func internalError(c echo.Context, err error) error {
	c.Logger().Error(err)
	return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "internal server error"})
}
