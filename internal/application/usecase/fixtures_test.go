package usecase_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/nautica-cli/internal/application/session"
	"github.com/jhoicas/nautica-cli/internal/domain/entity"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fixture compartida: una empresa con dos productos y tres usuarios con
// distintos niveles de acceso (user / manager / admin).
// ──────────────────────────────────────────────────────────────────────────────

type fixture struct {
	ctx     *session.Context
	user    *entity.User // rol global "user": solo view
	manager *entity.User // rol global "company_manager"
	admin   *entity.User // rol global "admin": incluye create_user y listados
	company *entity.Company
	boat    *entity.Product
}

func hash(t *testing.T, password string) string {
	t.Helper()
	h, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	return string(h)
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	userRole := entity.NewRole("user", entity.Permission{Code: entity.PermView})
	managerRole := entity.NewRole("company_manager",
		entity.Permission{Code: entity.PermView},
		entity.Permission{Code: entity.PermCompanyView},
		entity.Permission{Code: entity.PermCompanyEdit},
	)
	adminRole := entity.NewRole("admin",
		entity.Permission{Code: entity.PermView},
		entity.Permission{Code: entity.PermCompanyView},
		entity.Permission{Code: entity.PermCompanyEdit},
		entity.Permission{Code: entity.PermCreateUser},
		entity.Permission{Code: entity.PermViewListRoles},
		entity.Permission{Code: entity.PermViewListUsers},
	)

	testUser := &entity.User{ID: "u-user", Username: "test_user",
		PasswordHash: hash(t, "password"), Roles: []*entity.Role{userRole}}
	testManager := &entity.User{ID: "u-manager", Username: "test_manager",
		PasswordHash: hash(t, "manager_pwd"), Roles: []*entity.Role{managerRole}}
	testAdmin := &entity.User{ID: "u-admin", Username: "admin",
		PasswordHash: hash(t, "admin_pwd"), Roles: []*entity.Role{adminRole}}

	vehicle := entity.NewCategory(1, "Vehicle", "All vehicles")
	boatCat := entity.NewSubCategory(101, "Boat", "All boats", vehicle)

	produced := time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC)
	boat := entity.NewBoat("TEST001", "Test Boat", "Test boat description",
		decimal.NewFromInt(10000), produced, true, boatCat,
		entity.BoatSpecs{LengthM: 5.0, BeamM: 2.0, Material: "Fiberglass", EngineType: "Outboard", PowerHP: 90})
	motor := entity.NewMotor("TEST002", "Test Motor", "Test motor description",
		decimal.NewFromInt(2000), produced.AddDate(0, 1, 0), true, boatCat,
		entity.MotorSpecs{PowerHP: 75, FuelType: "Petrol", WeightKG: 45.0})

	inventory := entity.NewInventory("Test Inventory", boat, motor)
	company := entity.NewCompany("Test Company", "Test Owner", "Test Location", inventory)
	now := time.Now()
	company.AddMember("m1", testUser, userRole, now)
	company.AddMember("m2", testManager, managerRole, now)
	company.AddMember("m3", testAdmin, adminRole, now)

	data := &entity.AppData{
		Users:      []*entity.User{testUser, testManager, testAdmin},
		Companies:  []*entity.Company{company},
		Categories: []*entity.Category{vehicle, boatCat},
		Roles:      []*entity.Role{userRole, managerRole, adminRole},
	}
	ctx := session.NewContext(data, session.New(), session.DefaultTTL)

	return &fixture{
		ctx:     ctx,
		user:    testUser,
		manager: testManager,
		admin:   testAdmin,
		company: company,
		boat:    boat,
	}
}

// confirmYes y confirmNo simulan la respuesta del operador al prompt.
func confirmYes(string) bool { return true }
func confirmNo(string) bool  { return false }
