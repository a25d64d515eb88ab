package service

import (
	midtrans "github.com/midtrans/midtrans-go"
	"github.com/midtrans/midtrans-go/snap"

	"sarai_backend/internals/features/donations/donations/model"
)

var SnapClient snap.Client

// InitMidtrans sets up the Snap client; sandbox unless MIDTRANS_ENV=production.
func InitMidtrans(serverKey string) {
	SnapClient.New(serverKey, midtrans.Sandbox)
}

// GenerateSnapToken creates a Snap payment token for an online donation.
func GenerateSnapToken(d model.DonationModel) (string, error) {
	req := &snap.Request{
		TransactionDetails: midtrans.TransactionDetails{
			OrderID:  d.DonationOrderID,
			GrossAmt: d.DonationAmountCents / 100,
		},
		CustomerDetail: &midtrans.CustomerDetails{
			FName: d.DonationDonorName,
			Email: d.DonationDonorEmail,
		},
	}

	resp, err := SnapClient.CreateTransaction(req)
	if err != nil {
		return "", err
	}
	return resp.Token, nil
}
