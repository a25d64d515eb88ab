package service

import (
	"crypto/sha512"
	"encoding/hex"
	"fmt"
	"log"
	"time"

	"gorm.io/gorm"

	"sarai_backend/internals/configs"
	donationModel "sarai_backend/internals/features/donations/donations/model"
)

// verifySignature checks the midtrans signature_key field:
// sha512(order_id + status_code + gross_amount + server_key).
func verifySignature(body map[string]interface{}) bool {
	orderID, _ := body["order_id"].(string)
	statusCode, _ := body["status_code"].(string)
	grossAmount, _ := body["gross_amount"].(string)
	signature, _ := body["signature_key"].(string)
	serverKey := configs.GetEnv("MIDTRANS_SERVER_KEY")
	if orderID == "" || signature == "" || serverKey == "" {
		return false
	}
	sum := sha512.Sum512([]byte(orderID + statusCode + grossAmount + serverKey))
	return hex.EncodeToString(sum[:]) == signature
}

// HandleDonationStatusWebhook applies a midtrans status notification to the
// matching donation row.
func HandleDonationStatusWebhook(db *gorm.DB, body map[string]interface{}) error {
	orderID, ok1 := body["order_id"].(string)
	status, ok2 := body["transaction_status"].(string)
	if !ok1 || !ok2 {
		return fmt.Errorf("invalid payload")
	}
	if !verifySignature(body) {
		return fmt.Errorf("invalid signature for order %s", orderID)
	}

	var donation donationModel.DonationModel
	if err := db.Where("donation_order_id = ?", orderID).First(&donation).Error; err != nil {
		return fmt.Errorf("donation with order_id %s not found", orderID)
	}

	switch status {
	case "capture", "settlement":
		now := time.Now()
		donation.DonationStatus = "paid"
		donation.DonationPaidAt = &now
	case "expire":
		donation.DonationStatus = "expired"
	case "cancel", "deny":
		donation.DonationStatus = "canceled"
	case "refund", "partial_refund":
		donation.DonationStatus = "refunded"
	default:
		log.Println("[INFO] unhandled transaction status:", status)
		return nil
	}

	if err := db.Save(&donation).Error; err != nil {
		log.Println("[ERROR] save donation status:", err)
		return err
	}
	return nil
}
