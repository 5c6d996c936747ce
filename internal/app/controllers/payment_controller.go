package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/tahsin/lingora/internal/app/models"
	"github.com/tahsin/lingora/internal/app/models/dto"
	"github.com/tahsin/lingora/internal/app/services"
	"github.com/tahsin/lingora/internal/middleware"
)

// PaymentController bridges to the payment processor and settles payments
type PaymentController struct {
	paymentService services.PaymentService
}

// NewPaymentController creates a new PaymentController
func NewPaymentController(paymentService services.PaymentService) *PaymentController {
	return &PaymentController{
		paymentService: paymentService,
	}
}

// CreateIntent handles POST /create-payment-intent. The decimal price is
// converted to the smallest currency unit before calling the processor; the
// returned client secret lets the frontend complete the payment out-of-band.
func (c *PaymentController) CreateIntent(ctx *gin.Context) {
	var req dto.CreateIntentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid payment data")
		errorDetail = errorDetail.WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	secret, err := c.paymentService.CreateIntent(ctx.Request.Context(), req.Price)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      dto.CreateIntentResponse{ClientSecret: secret},
		Timestamp: time.Now(),
	})
}

// SettlePayment handles POST /payments: the payment record is inserted, then
// the referenced cart items are removed. Both step results are reported even
// when the cleanup step failed; the two operations are not atomic.
func (c *PaymentController) SettlePayment(ctx *gin.Context) {
	var req dto.SettlePaymentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid payment data")
		errorDetail = errorDetail.WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	payment := &models.Payment{
		StudentEmail:  req.StudentEmail,
		Amount:        req.Amount,
		TransactionID: req.TransactionID,
		CartItemIDs:   req.CartItemIDs,
		ClassNames:    req.ClassNames,
	}

	result, err := c.paymentService.Settle(ctx.Request.Context(), payment)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.APIResponse{
		Data: dto.SettlementResponse{
			InsertResult: dto.MutationResult{ID: result.PaymentID, AffectedRows: 1},
			DeleteResult: dto.MutationResult{AffectedRows: result.RemovedCount},
		},
		Timestamp: time.Now(),
	})
}
