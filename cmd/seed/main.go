package main

import (
	"log"
	"os"

	"placid-catalog-be/internal/model"
	"placid-catalog-be/pkg/database"

	"github.com/fatih/color"
	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("Info: No .env file found, using system env")
	}

	dsn := os.Getenv("DB_CONNECTION_STRING")
	if dsn == "" {
		log.Fatal("Error: DB_CONNECTION_STRING is not set")
	}

	db, err := database.NewGormDBFromDSN(dsn)
	if err != nil {
		log.Fatal("Error: Failed to connect to database:", err)
	}

	color.Cyan("Seeding Placid catalog...")

	seedAdminUser(db)
	categoriesBySlug := seedCategories(db)
	seedProducts(db, categoriesBySlug)

	color.Cyan("Seeding completed")
}

func seedAdminUser(db *gorm.DB) {
	color.Yellow("\n1. Admin user")

	email := os.Getenv("SEED_ADMIN_EMAIL")
	if email == "" {
		email = "admin@placid.asia"
	}
	password := os.Getenv("SEED_ADMIN_PASSWORD")
	if password == "" {
		password = "changeme"
		color.Red("SEED_ADMIN_PASSWORD not set, using default. Change it before going live.")
	}

	var existing model.User
	if err := db.Where("email = ?", email).First(&existing).Error; err == nil {
		color.Green("Admin '%s' already exists, skipping", email)
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		color.Red("Failed to hash password: %v", err)
		return
	}

	admin := model.User{
		Email:        email,
		PasswordHash: string(hash),
		Name:         "Placid Admin",
		Role:         "admin",
	}
	if err := db.Create(&admin).Error; err != nil {
		color.Red("Failed to create admin: %v", err)
		return
	}
	color.Green("Created admin: %s", email)
}

type seedCategory struct {
	Slug     string
	NameEn   string
	NameTh   string
	Order    int
	Children []seedCategory
}

var catalogTree = []seedCategory{
	{
		Slug: "acoustic-panels", NameEn: "Acoustic Panels", NameTh: "แผ่นซับเสียง", Order: 1,
		Children: []seedCategory{
			{Slug: "fabric-wrapped-panels", NameEn: "Fabric Wrapped Panels", NameTh: "แผ่นซับเสียงหุ้มผ้า", Order: 1},
			{Slug: "wooden-panels", NameEn: "Wooden Panels", NameTh: "แผ่นไม้อะคูสติก", Order: 2},
			{Slug: "foam-panels", NameEn: "Foam Panels", NameTh: "โฟมซับเสียง", Order: 3},
		},
	},
	{
		Slug: "ceiling-systems", NameEn: "Ceiling Systems", NameTh: "ระบบฝ้าเพดาน", Order: 2,
		Children: []seedCategory{
			{Slug: "baffles", NameEn: "Baffles", NameTh: "แผงกันเสียงแขวน", Order: 1},
			{Slug: "ceiling-clouds", NameEn: "Ceiling Clouds", NameTh: "แผ่นซับเสียงแขวนเพดาน", Order: 2},
		},
	},
	{
		Slug: "sound-insulation", NameEn: "Sound Insulation", NameTh: "ฉนวนกันเสียง", Order: 3,
	},
	{
		Slug: "doors-and-seals", NameEn: "Acoustic Doors & Seals", NameTh: "ประตูกันเสียงและซีล", Order: 4,
	},
}

func seedCategories(db *gorm.DB) map[string]model.Category {
	color.Yellow("\n2. Category hierarchy")

	result := make(map[string]model.Category)
	var walk func(nodes []seedCategory, parentId *model.Category)
	walk = func(nodes []seedCategory, parent *model.Category) {
		for _, node := range nodes {
			var cat model.Category
			if err := db.Where("slug = ?", node.Slug).First(&cat).Error; err == nil {
				color.Green("Category '%s' already exists, skipping", node.Slug)
			} else {
				cat = model.Category{
					NameEn: node.NameEn,
					NameTh: node.NameTh,
					Slug:   node.Slug,
					Active: true,
					Order:  node.Order,
				}
				if parent != nil {
					cat.ParentId = &parent.Id
				}
				if err := db.Create(&cat).Error; err != nil {
					color.Red("Failed to create category '%s': %v", node.Slug, err)
					continue
				}
				color.Green("Created category: %s", node.Slug)
			}
			result[node.Slug] = cat
			walk(node.Children, &cat)
		}
	}
	walk(catalogTree, nil)
	return result
}

type seedProduct struct {
	Sku          string
	TitleEn      string
	TitleTh      string
	Description  string
	Supplier     string
	CategorySlug string
	Featured     bool
}

var catalogProducts = []seedProduct{
	{Sku: "PA-FW-101", TitleEn: "Fabric Wrapped Panel 60x60", TitleTh: "แผ่นซับเสียงหุ้มผ้า 60x60", Description: "Glass wool core acoustic panel wrapped in acoustically transparent fabric. NRC 0.85.", Supplier: "Placid", CategorySlug: "fabric-wrapped-panels", Featured: true},
	{Sku: "PA-FW-102", TitleEn: "Fabric Wrapped Panel 120x60", TitleTh: "แผ่นซับเสียงหุ้มผ้า 120x60", Description: "Large format fabric wrapped panel for walls and meeting rooms. NRC 0.90.", Supplier: "Placid", CategorySlug: "fabric-wrapped-panels", Featured: true},
	{Sku: "PA-WD-201", TitleEn: "Grooved Wooden Panel", TitleTh: "แผ่นไม้อะคูสติกแบบร่อง", Description: "Perforated MDF panel with real wood veneer, grooved profile for mid-frequency absorption.", Supplier: "Placid", CategorySlug: "wooden-panels", Featured: true},
	{Sku: "PA-BF-301", TitleEn: "Suspended Baffle 1200", TitleTh: "แผงกันเสียงแขวน 1200", Description: "Vertical hanging baffle for open ceilings, PET felt, 1200x300x40mm.", Supplier: "Placid", CategorySlug: "baffles"},
	{Sku: "PA-CL-401", TitleEn: "Ceiling Cloud Hex", TitleTh: "แผ่นซับเสียงเพดานหกเหลี่ยม", Description: "Hexagonal ceiling cloud with concealed suspension kit.", Supplier: "Placid", CategorySlug: "ceiling-clouds"},
	{Sku: "PA-IN-501", TitleEn: "Rockwool Insulation 50mm", TitleTh: "ฉนวนร็อควูล 50 มม.", Description: "High density rockwool slab for wall and partition sound insulation.", Supplier: "ROCKWOOL", CategorySlug: "sound-insulation"},
	{Sku: "PA-DR-601", TitleEn: "Acoustic Door STC 40", TitleTh: "ประตูกันเสียง STC 40", Description: "Steel acoustic door set with magnetic seals, STC 40 rated.", Supplier: "Placid", CategorySlug: "doors-and-seals"},
}

func seedProducts(db *gorm.DB, categories map[string]model.Category) {
	color.Yellow("\n3. Products")

	for _, p := range catalogProducts {
		var existing model.Product
		if err := db.Where("sku = ?", p.Sku).First(&existing).Error; err == nil {
			color.Green("Product '%s' already exists, skipping", p.Sku)
			continue
		}

		cat, ok := categories[p.CategorySlug]
		if !ok {
			color.Red("Unknown category slug '%s' for product %s", p.CategorySlug, p.Sku)
			continue
		}

		supplier := p.Supplier
		product := model.Product{
			Sku:           p.Sku,
			TitleEn:       p.TitleEn,
			TitleTh:       p.TitleTh,
			DescriptionEn: p.Description,
			Category:      cat.NameEn,
			Supplier:      &supplier,
			Active:        true,
			Featured:      p.Featured,
		}
		if err := db.Create(&product).Error; err != nil {
			color.Red("Failed to create product '%s': %v", p.Sku, err)
			continue
		}

		link := model.ProductCategory{
			ProductId:  product.Id,
			CategoryId: cat.Id,
			IsPrimary:  true,
		}
		if err := db.Create(&link).Error; err != nil {
			color.Red("Failed to link product '%s' to category: %v", p.Sku, err)
			continue
		}

		color.Green("Created product: %s (%s)", p.Sku, p.TitleEn)
	}

	// Refresh denormalized counts after inserts.
	err := db.Exec(`UPDATE categories c SET product_count = (
		SELECT COUNT(DISTINCT pc.product_id) FROM product_categories pc
		JOIN products p ON p.id = pc.product_id
		WHERE pc.category_id = c.id AND p.active AND p.deleted_at IS NULL
	) WHERE c.active`).Error
	if err != nil {
		color.Red("Failed to refresh product counts: %v", err)
	}
}
