package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"eshop/internal/model"
	"eshop/internal/service"
)

type createOrderRequest struct {
	ID       string          `json:"id"`
	Products []model.Product `json:"products"`
	Author   string          `json:"author"`
}

func CreateOrderHandler(orderSvc *service.OrderService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req createOrderRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid request body", http.StatusBadRequest)
			return
		}
		if req.ID == "" {
			req.ID = uuid.NewString()
		}

		order := model.NewOrder(req.ID, req.Products, time.Now().UnixMilli(), req.Author)
		created, err := orderSvc.CreateOrder(r.Context(), order)
		if err != nil {
			slog.Error("order create failed", "error", err)
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		writeJSON(w, http.StatusCreated, created)
	}
}

func GetOrderHandler(orderSvc *service.OrderService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		order, err := orderSvc.FindByID(r.Context(), chi.URLParam(r, "id"))
		if err != nil {
			slog.Error("order lookup failed", "error", err)
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}
		if order == nil {
			http.Error(w, "not found", http.StatusNotFound)
			return
		}
		writeJSON(w, http.StatusOK, order)
	}
}

func OrderHistoryHandler(orderSvc *service.OrderService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		author := r.URL.Query().Get("author")
		if author == "" {
			http.Error(w, "author is required", http.StatusBadRequest)
			return
		}

		orders, err := orderSvc.FindAllByAuthor(r.Context(), author)
		if err != nil {
			slog.Error("order history failed", "author", author, "error", err)
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		if len(orders) == 0 {
			w.WriteHeader(http.StatusNoContent)
			return
		}

		writeJSON(w, http.StatusOK, orders)
	}
}

type payOrderRequest struct {
	PaymentMethod string `json:"payment_method"`
	VoucherCode   string `json:"voucher_code"`
	BankName      string `json:"bank_name"`
	ReferenceCode string `json:"reference_code"`
}

// PayOrderHandler maps the submitted form fields into the data bag the
// payment workflow expects for the chosen method. A rejected payment is
// still a 201: the outcome lives in the payment status, not the HTTP code.
func PayOrderHandler(orderSvc *service.OrderService, paymentSvc *service.PaymentService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req payOrderRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid request body", http.StatusBadRequest)
			return
		}

		order, err := orderSvc.FindByID(r.Context(), chi.URLParam(r, "id"))
		if err != nil {
			slog.Error("order lookup failed", "error", err)
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}
		if order == nil {
			http.Error(w, "not found", http.StatusNotFound)
			return
		}

		data := map[string]string{}
		switch model.PaymentMethod(req.PaymentMethod) {
		case model.PaymentMethodVoucher:
			data["voucherCode"] = req.VoucherCode
		case model.PaymentMethodBankTransfer:
			data["bankName"] = req.BankName
			data["referenceCode"] = req.ReferenceCode
		}

		payment, err := paymentSvc.AddPayment(r.Context(), order, req.PaymentMethod, data)
		if err != nil {
			slog.Error("payment failed", "order_id", order.ID, "error", err)
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		writeJSON(w, http.StatusCreated, payment)
	}
}
