package seeders

import (
	"fmt"
	"time"

	"golang.org/x/crypto/bcrypt"

	"mart-api/config"
	"mart-api/models"
	"mart-api/utils/common"
)

// helper untuk pointer string
func ptrString(s string) *string {
	return &s
}

func hashPassword(plain string) string {
	hash, _ := bcrypt.GenerateFromPassword([]byte(plain), bcrypt.DefaultCost)
	return string(hash)
}

func Seed() {
	// ============= Seed Users =============
	users := []models.User{
		{Name: "Admin", Email: "admin@mart.local", Password: hashPassword("admin123"), Role: "admin"},
		{Name: "Jamie Tan", Email: "jamie@example.com", Password: hashPassword("customer123"), Phone: ptrString("+6591234567"), Role: "customer"},
	}

	for _, user := range users {
		config.DB.FirstOrCreate(&user, models.User{Email: user.Email})
	}

	// ============= Seed Products =============
	products := []models.Product{
		{Name: "Kaya Toast Box", Description: ptrString("Traditional kaya toast, 4 pieces"), Stock: 40, BuyPrice: 2.00, Price: 4.50},
		{Name: "Kopi O Bottle", Description: ptrString("Black coffee, bottled 500ml"), Stock: 60, BuyPrice: 1.20, Price: 3.00},
		{Name: "Curry Puff", Description: ptrString("Chicken curry puff"), Stock: 50, BuyPrice: 0.80, Price: 2.00},
		{Name: "Milo Dinosaur", Description: ptrString("Iced milo with extra powder"), Stock: 30, BuyPrice: 1.50, Price: 4.00},
		{Name: "Chicken Rice Set", Description: ptrString("Steamed chicken rice with soup"), Stock: 25, BuyPrice: 3.00, Price: 6.50},
		{Name: "Laksa Bowl", Description: ptrString("Spicy coconut noodle soup"), Stock: 20, BuyPrice: 3.20, Price: 7.00},
		{Name: "Pandan Cake", Description: ptrString("Chiffon pandan cake slice"), Stock: 35, BuyPrice: 1.00, Price: 3.50},
		{Name: "Bandung Drink", Description: ptrString("Rose syrup with milk"), Stock: 45, BuyPrice: 0.70, Price: 2.50},
	}

	for _, product := range products {
		config.DB.FirstOrCreate(&product, models.Product{Name: product.Name})
	}

	// skip order seeding kalau sudah ada
	var orderCount int64
	config.DB.Model(&models.Order{}).Count(&orderCount)
	if orderCount > 0 {
		fmt.Println("Seeding done (orders already present)")
		return
	}

	var customer models.User
	config.DB.Where("role = ?", "customer").First(&customer)

	var allProducts []models.Product
	config.DB.Find(&allProducts)
	if len(allProducts) < 2 {
		return
	}

	year := time.Now().Year()
	seq := int64(0)

	createOrder := func(status, paymentType string, productIdx []int) {
		var items []models.OrderItem
		total := 0.0
		for _, idx := range productIdx {
			p := allProducts[idx%len(allProducts)]
			qty := 1 + idx%2
			subtotal := p.Price * float64(qty)
			total += subtotal
			items = append(items, models.OrderItem{
				ProductID: p.ID,
				Name:      p.Name,
				Price:     p.Price,
				Quantity:  qty,
				Subtotal:  subtotal,
			})
		}

		seq++
		order := models.Order{
			OrderNumber: common.FormatOrderNumber(year, seq),
			UserID:      customer.ID,
			TotalAmount: total,
			PaymentType: paymentType,
			Status:      status,
			Items:       items,
		}

		now := time.Now()
		if status == models.OrderPaid || status == models.OrderCompleted {
			paid := now.Add(-30 * time.Minute)
			order.PaidAt = &paid
		}
		if status == models.OrderCompleted {
			order.CompletedAt = &now
		}

		config.DB.Create(&order)
	}

	createOrder(models.OrderPending, models.PaymentCash, []int{0, 1})
	createOrder(models.OrderPending, models.PaymentPayNow, []int{2})
	createOrder(models.OrderPaid, models.PaymentPayNow, []int{3, 4})
	createOrder(models.OrderCompleted, models.PaymentCash, []int{5, 6})

	fmt.Println("Seeding done: 2 users + 8 products + 4 orders")
}
