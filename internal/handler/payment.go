package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"eshop/internal/model"
	"eshop/internal/service"
)

func GetPaymentHandler(paymentSvc *service.PaymentService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		payment, err := paymentSvc.GetPayment(r.Context(), chi.URLParam(r, "id"))
		if err != nil {
			slog.Error("payment lookup failed", "error", err)
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}
		if payment == nil {
			http.Error(w, "not found", http.StatusNotFound)
			return
		}
		writeJSON(w, http.StatusOK, payment)
	}
}

func ListPaymentsHandler(paymentSvc *service.PaymentService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		payments, err := paymentSvc.GetAllPayments(r.Context())
		if err != nil {
			slog.Error("payment list failed", "error", err)
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}
		if payments == nil {
			payments = []*model.Payment{}
		}
		writeJSON(w, http.StatusOK, payments)
	}
}

type setStatusRequest struct {
	Status string `json:"status"`
}

func SetPaymentStatusHandler(paymentSvc *service.PaymentService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req setStatusRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid request body", http.StatusBadRequest)
			return
		}

		payment, err := paymentSvc.GetPayment(r.Context(), chi.URLParam(r, "id"))
		if err != nil {
			slog.Error("payment lookup failed", "error", err)
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}
		if payment == nil {
			http.Error(w, "not found", http.StatusNotFound)
			return
		}

		updated, err := paymentSvc.SetStatus(r.Context(), payment, req.Status)
		if err != nil {
			if errors.Is(err, model.ErrInvalidPaymentStatus) {
				http.Error(w, err.Error(), http.StatusUnprocessableEntity)
				return
			}
			slog.Error("payment status update failed", "payment_id", payment.ID, "error", err)
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		writeJSON(w, http.StatusOK, updated)
	}
}
