package commands_test

import (
	"testing"
	"time"

	"logistics/internal/core/domain/model/delivery"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/rider"

	"github.com/stretchr/testify/require"
)

func testAddress(t *testing.T, district string) kernel.Address {
	t.Helper()
	address, err := kernel.NewAddress("Dhaka", district, "Banani", "Road 11")
	require.NoError(t, err)
	return address
}

func testProduct(t *testing.T) delivery.Product {
	t.Helper()
	product, err := delivery.NewProduct(delivery.ProductTypeNonDocument, 2)
	require.NoError(t, err)
	return product
}

func testDeliveryInStatus(t *testing.T, status delivery.Status, riderID *kernel.UUID) *delivery.Delivery {
	t.Helper()
	now := time.Now().UTC()
	d, err := delivery.RestoreDelivery(
		kernel.NewUUID(), testAddress(t, "Dhaka"), testAddress(t, "Dhaka"), testProduct(t),
		110, 88, true, status, riderID, now, now.Add(24*time.Hour),
	)
	require.NoError(t, err)
	return d
}

func testVerifiedRider(t *testing.T) *rider.Rider {
	t.Helper()
	credentials, err := rider.NewCredentials("NID-9", "DL-9", "motorbike", "DHK-11-9")
	require.NoError(t, err)
	r, err := rider.NewRider(kernel.NewUUID(), "auth0|rider9", "Jamal Uddin",
		"jamal@example.com", "+8801712000000", credentials, testAddress(t, "Dhaka"))
	require.NoError(t, err)
	r.Verify()
	return r
}
