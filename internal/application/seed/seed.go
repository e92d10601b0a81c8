// Package seed construye el conjunto de datos inicial que se siembra en la
// primera ejecución, cuando todavía no existe archivo de datos.
package seed

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/nautica-cli/internal/domain/entity"
)

// Default arma el dataset de ejemplo: dos empresas náuticas con sus
// inventarios, el árbol de categorías, los roles base y cuatro usuarios.
func Default() *entity.AppData {
	// Permisos
	permView := entity.Permission{Code: entity.PermView}
	permCompanyView := entity.Permission{Code: entity.PermCompanyView}
	permCompanyEdit := entity.Permission{Code: entity.PermCompanyEdit}

	// Roles
	userRole := entity.NewRole("user", permView)
	managerRole := entity.NewRole("company_manager", permView, permCompanyView, permCompanyEdit)
	workerRole := entity.NewRole("company_worker", permView, permCompanyView)
	superuserPerms := make([]entity.Permission, 0)
	for _, code := range entity.AllPermissionCodes() {
		superuserPerms = append(superuserPerms, entity.Permission{Code: code})
	}
	superuserRole := entity.NewRole("superuser", superuserPerms...)

	// Usuarios
	superuser := newUser("superuser", "superuser", superuserRole)
	alice := newUser("Alice", "alice", userRole)
	bob := newUser("Bob", "bob", userRole)
	plainUser := newUser("user", "user", userRole)

	// Categorías: árbol Vehicle ← WaterVehicle ← {Yacht, Boat, Sailboats},
	// Parts ← Motors, Electronics suelta.
	vehicle := entity.NewCategory(1, "Vehicle", "All kind of vehicles")
	waterVehicle := entity.NewSubCategory(100, "Water Vehicle", "Boats, yachts, etc", vehicle)
	parts := entity.NewCategory(2, "Parts", "Parts for vehicles")
	yachtCat := entity.NewSubCategory(1000, "Yacht", "Luxury yachts", waterVehicle)
	boatCat := entity.NewSubCategory(1001, "Boat", "Boats for all purposes", waterVehicle)
	motorCat := entity.NewSubCategory(10000, "Motors", "Motors", parts)
	sailCat := entity.NewSubCategory(1002, "Sailboats", "Boats powered by sails", waterVehicle)
	electronicsCat := entity.NewCategory(3, "Electronics", "Electronic equipment for boats")

	// Inventario de Boat Store
	yacht1 := entity.NewYacht("SKU001", "Yacht X", "Luxury yacht",
		decimal.NewFromInt(700000), date(2022, 6, 1), true, yachtCat,
		entity.YachtSpecs{LOAM: 14.5, BeamM: 4.8, DraftM: 2.0, Berths: 8, EngineType: "Diesel", PowerHP: 800})
	boat1 := entity.NewBoat("SKU002", "Boat A", "Affordable boat",
		decimal.NewFromInt(35000), date(2023, 1, 15), true, boatCat,
		entity.BoatSpecs{LengthM: 6.0, BeamM: 2.2, Material: "Fiberglass", EngineType: "Petrol", PowerHP: 120})
	motor1 := entity.NewMotor("SKU003", "Motor B", "Outboard motor",
		decimal.NewFromInt(5000), date(2022, 11, 20), true, motorCat,
		entity.MotorSpecs{PowerHP: 90, FuelType: "Petrol", WeightKG: 55})
	boat2 := entity.NewBoat("SKU004", "Fisherman Pro", "Professional fishing boat",
		decimal.NewFromInt(48000), date(2023, 3, 10), true, boatCat,
		entity.BoatSpecs{LengthM: 7.2, BeamM: 2.5, Material: "Aluminum", EngineType: "Diesel", PowerHP: 150})
	sailboat1 := entity.NewBoat("SKU005", "WindRider 220", "Elegant sailboat for weekend adventures",
		decimal.NewFromInt(28500), date(2022, 8, 15), true, sailCat,
		entity.BoatSpecs{LengthM: 6.8, BeamM: 2.3, Material: "Fiberglass", EngineType: "Auxiliary Electric", PowerHP: 15})

	// Inventario de Yachts Inc
	yacht2 := entity.NewYacht("SKU006", "Ocean Master 48", "Premium ocean-going yacht",
		decimal.NewFromInt(1200000), date(2023, 4, 20), true, yachtCat,
		entity.YachtSpecs{LOAM: 16.8, BeamM: 5.2, DraftM: 2.4, Berths: 10, EngineType: "Twin Diesel", PowerHP: 1200})
	yacht3 := entity.NewYacht("SKU007", "Coastal Explorer 38", "Comfortable coastal cruiser",
		decimal.NewFromInt(520000), date(2022, 10, 5), true, yachtCat,
		entity.YachtSpecs{LOAM: 11.6, BeamM: 4.1, DraftM: 1.8, Berths: 6, EngineType: "Diesel", PowerHP: 450})
	motor2 := entity.NewMotor("SKU008", "PowerMax 150", "High-performance outboard motor",
		decimal.NewFromInt(12000), date(2023, 2, 8), true, motorCat,
		entity.MotorSpecs{PowerHP: 150, FuelType: "Petrol", WeightKG: 95})
	sailboat2 := entity.NewBoat("SKU009", "BlueWater 32", "Ocean-capable sailing yacht",
		decimal.NewFromInt(125000), date(2022, 7, 25), true, sailCat,
		entity.BoatSpecs{LengthM: 9.8, BeamM: 3.4, Material: "Fiberglass/Carbon", EngineType: "Diesel Auxiliary", PowerHP: 40})
	navigationSystem := entity.NewProduct("SKU010", "NavPro 5000", "Advanced marine navigation system",
		decimal.NewFromInt(3500), date(2023, 1, 10), true, electronicsCat)

	boatStoreInventory := entity.NewInventory("Boat Store Main Warehouse",
		yacht1, boat1, motor1, boat2, sailboat1)
	yachtIncInventory := entity.NewInventory("Yacht Inc Premium Showroom",
		yacht2, yacht3, motor2, sailboat2, navigationSystem)

	// Membresías y empresas
	c1Manager := &entity.Membership{
		ID: uuid.NewString(), User: alice, Role: managerRole,
		JoinedDate: date(2020, 1, 1), Active: true,
	}
	c2Manager := &entity.Membership{
		ID: uuid.NewString(), User: bob, Role: managerRole,
		JoinedDate: date(2021, 5, 12), Active: true,
	}
	company1 := entity.NewCompany("Boat Store", "Trump", "Sydney", boatStoreInventory, c1Manager)
	company2 := entity.NewCompany("Yachts Inc", "Ilon Mask", "Melbourne", yachtIncInventory, c2Manager)

	return &entity.AppData{
		Users:     []*entity.User{alice, bob, plainUser, superuser},
		Roles:     []*entity.Role{userRole, managerRole, workerRole, superuserRole},
		Companies: []*entity.Company{company1, company2},
		Categories: []*entity.Category{
			yachtCat, boatCat, motorCat, vehicle, waterVehicle,
			parts, sailCat, electronicsCat,
		},
	}
}

func newUser(username, password string, roles ...*entity.Role) *entity.User {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		// bcrypt solo falla con costos fuera de rango
		panic("seed: " + err.Error())
	}
	return &entity.User{
		ID:           uuid.NewString(),
		Username:     username,
		PasswordHash: string(hash),
		Roles:        roles,
	}
}

func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}
