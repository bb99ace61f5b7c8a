package route

import (
	"net/http"

	"git.thinkinpower.net/cardcheck/card"
	"git.thinkinpower.net/cardcheck/mod"
	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"
	logger "github.com/sirupsen/logrus"
)

func classify(ctx *gin.Context) {
	number := card.Normalize(ctx.Param("number"))
	t := card.Classify(number)
	if t == "" {
		ctx.JSON(http.StatusOK, mod.ResponseValue{Code: mod.ResponseCodeNotFound, Msg: "no issuer matches"})
		return
	}
	ctx.JSON(http.StatusOK, mod.ResponseData{
		ResponseValue: mod.ResponseValue{Code: mod.ResponseCodeSuccess, Msg: "ok"},
		Data:          mod.ClassifyResult{Type: string(t)},
	})
}

func validate(ctx *gin.Context) {
	req, ok := bindValidateRequest(ctx)
	if !ok {
		return
	}
	result := card.Validate(req.Number, allowedTypes(req)...)
	ctx.JSON(http.StatusOK, mod.ResponseData{
		ResponseValue: mod.ResponseValue{Code: mod.ResponseCodeSuccess, Msg: "ok"},
		Data:          mod.ValidateResult{Valid: result.Valid, Number: result.Number, Type: string(result.Type)},
	})
}

func check(ctx *gin.Context) {
	req, ok := bindValidateRequest(ctx)
	if !ok {
		return
	}
	if err := card.Check(req.Number, allowedTypes(req)...); err != nil {
		logger.WithFields(logger.Fields{
			"number": card.Mask(card.Normalize(req.Number)),
			"reason": err.Error(),
		}).Info("card check rejected")
		ctx.JSON(http.StatusOK, mod.ResponseValue{Code: checkFailureCode(err), Msg: err.Error()})
		return
	}
	ctx.JSON(http.StatusOK, mod.ResponseValue{Code: mod.ResponseCodeSuccess, Msg: "ok"})
}

func validCvc(ctx *gin.Context) {
	valid := card.ValidCVC(ctx.Param("cvc"), card.Type(ctx.Param("type")))
	ctx.JSON(http.StatusOK, boolResponse(valid))
}

func validExpiry(ctx *gin.Context) {
	valid := card.ValidExpiry(ctx.Param("year"), ctx.Param("month"))
	ctx.JSON(http.StatusOK, boolResponse(valid))
}

func bindValidateRequest(ctx *gin.Context) (mod.ValidateRequest, bool) {
	var req mod.ValidateRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		logger.Error(err)
		ctx.JSON(http.StatusOK, mod.ResponseValue{Code: mod.ResponseCodeInvalidParams, Msg: "cannot parse request body"})
		return req, false
	}
	if req.Number == "" {
		ctx.JSON(http.StatusOK, mod.ResponseValue{Code: mod.ResponseCodeMissingParams, Msg: "number is required"})
		return req, false
	}
	return req, true
}

func allowedTypes(req mod.ValidateRequest) []card.Type {
	types := make([]card.Type, 0, len(req.Types))
	for _, t := range req.Types {
		types = append(types, card.Type(t))
	}
	return types
}

func checkFailureCode(err error) int {
	switch errors.Cause(err) {
	case card.ErrTypeNotAllowed:
		return mod.ResponseCodeTypeNotAllowed
	case card.ErrPatternMismatch:
		return mod.ResponseCodePatternMismatch
	case card.ErrLengthMismatch:
		return mod.ResponseCodeLengthMismatch
	case card.ErrLuhnFailed:
		return mod.ResponseCodeLuhnFailed
	}
	return mod.ResponseCodeFailure
}

func boolResponse(valid bool) mod.ResponseData {
	return mod.ResponseData{
		ResponseValue: mod.ResponseValue{Code: mod.ResponseCodeSuccess, Msg: "ok"},
		Data:          gin.H{"valid": valid},
	}
}
