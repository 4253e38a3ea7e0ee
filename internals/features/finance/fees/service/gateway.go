// file: internals/features/finance/fees/service/gateway.go
package service

import (
	"context"
	"log"
	"strings"

	"github.com/google/uuid"
	midtrans "github.com/midtrans/midtrans-go"
	"github.com/midtrans/midtrans-go/snap"
	"gorm.io/gorm"

	"schoolku_backend/internals/features/finance/fees/model"
	"schoolku_backend/internals/helpers/errs"
)

/* =========================================================
   Midtrans Snap — checkout untuk pelunasan via gateway.
   Endpoint ini TIDAK memutasi ledger; settlement dicatat
   operator lewat ReconciliationService setelah dana masuk.
========================================================= */

var snapClient *snap.Client

// InitMidtrans dipanggil saat bootstrap; key kosong = fitur nonaktif.
func InitMidtrans(serverKey string) {
	if strings.TrimSpace(serverKey) == "" {
		log.Println("⚠️ Midtrans dinonaktifkan (server key kosong)")
		return
	}
	c := &snap.Client{}
	c.New(serverKey, midtrans.Sandbox)
	snapClient = c
	log.Println("✅ Midtrans Snap siap")
}

type CheckoutService struct {
	DB *gorm.DB
}

func NewCheckoutService(db *gorm.DB) *CheckoutService {
	return &CheckoutService{DB: db}
}

type CheckoutResult struct {
	Token       string `json:"token"`
	RedirectURL string `json:"redirect_url"`
	OrderID     string `json:"order_id"`
}

// CreateCheckout membuat transaksi Snap untuk sisa tagihan satu fee.
func (s *CheckoutService) CreateCheckout(ctx context.Context, feeID uuid.UUID, customerName, customerEmail string) (*CheckoutResult, error) {
	if snapClient == nil {
		return nil, errs.NewConflict("payment gateway is not configured")
	}

	var fee model.FeeRecord
	if err := s.DB.WithContext(ctx).
		First(&fee, "fee_record_id = ?", feeID).Error; err != nil {
		return nil, errs.NewNotFound("fee record")
	}

	outstanding := fee.Outstanding()
	if !outstanding.IsPositive() {
		return nil, errs.NewConflict("fee has no outstanding amount")
	}

	// order id unik per fee per percobaan checkout
	orderID := "FEE-" + fee.FeeRecordID.String()[:8] + "-" + uuid.NewString()[:8]

	req := &snap.Request{
		TransactionDetails: midtrans.TransactionDetails{
			OrderID: orderID,
			// Midtrans pakai rupiah utuh; sen dibulatkan ke bawah
			GrossAmt: outstanding.Sen() / 100,
		},
		CustomerDetail: &midtrans.CustomerDetails{
			FName: customerName,
			Email: customerEmail,
		},
		Items: &[]midtrans.ItemDetails{
			{
				ID:       fee.FeeRecordID.String(),
				Price:    outstanding.Sen() / 100,
				Qty:      1,
				Name:     string(fee.FeeRecordCategory),
				Category: string(fee.FeeRecordCategory),
			},
		},
	}

	resp, err := snapClient.CreateTransaction(req)
	if err != nil {
		return nil, errs.NewTransient("gateway checkout failed", err)
	}
	return &CheckoutResult{Token: resp.Token, RedirectURL: resp.RedirectURL, OrderID: orderID}, nil
}
