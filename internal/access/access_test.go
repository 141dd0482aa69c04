package access

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/aymenhafsi/electroshop/internal/models"
)

func TestCanManageCatalog(t *testing.T) {
	require.True(t, CanManageCatalog(models.RoleSeller))
	require.True(t, CanManageCatalog(models.RoleAdmin))
	require.False(t, CanManageCatalog(models.RoleBuyer))
}

func TestCanEditProduct(t *testing.T) {
	product := &models.Product{ID: 1, SellerID: 7}

	require.True(t, CanEditProduct(7, models.RoleSeller, product))
	require.False(t, CanEditProduct(8, models.RoleSeller, product))
	require.True(t, CanEditProduct(8, models.RoleAdmin, product))
	require.False(t, CanEditProduct(7, models.RoleBuyer, product))
}

func TestCanViewSellerDashboard(t *testing.T) {
	require.True(t, CanViewSellerDashboard(models.RoleSeller))
	require.True(t, CanViewSellerDashboard(models.RoleAdmin))
	require.False(t, CanViewSellerDashboard(models.RoleBuyer))
}
