// Package access holds the role predicates that gate catalog management and
// seller views. Roles are plain data on the user; every check is an explicit
// function over (identity, role, resource).
package access

import "github.com/aymenhafsi/electroshop/internal/models"

// CanManageCatalog reports whether the role may create products at all.
func CanManageCatalog(role models.Role) bool {
	return role == models.RoleSeller || role == models.RoleAdmin
}

// CanEditProduct allows the owning seller and any admin.
func CanEditProduct(userID uint, role models.Role, product *models.Product) bool {
	if role == models.RoleAdmin {
		return true
	}
	return role == models.RoleSeller && product.SellerID == userID
}

func CanViewSellerDashboard(role models.Role) bool {
	return role == models.RoleSeller || role == models.RoleAdmin
}
