package models

type LoginRequest struct {
	Email    string `json:"email" form:"email" binding:"required,email"`
	Password string `json:"password" form:"password" binding:"required"`
}

type SaveProductRequest struct {
	Name          string `json:"name" form:"name" binding:"required"`
	Category      string `json:"category" form:"category" binding:"required"`
	PurchasePrice *int   `json:"purchase_price" form:"purchase_price" binding:"required,min=0"`
	SellingPrice  *int   `json:"selling_price" form:"selling_price" binding:"required,min=0"`
	Stock         *int   `json:"stock" form:"stock" binding:"required,min=0"`
	ImageURL      string `json:"image_url" form:"image_url"`
}

type AddToCartRequest struct {
	ProductID string `json:"product_id" binding:"required"`
}

type CheckoutRequest struct {
	CashReceived *int `json:"cash_received" binding:"required,min=0"`
}

type GridRequest struct {
	Keyword string `form:"keyword"`
	Page    int    `form:"page"`
}

type LoginResponse struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}

type CartResponse struct {
	Items []CartItem `json:"items"`
	Total int        `json:"total"`
}

type ReceiptResponse struct {
	Transaction Transaction       `json:"transaction"`
	Items       []TransactionItem `json:"items"`
}

type PeriodReport struct {
	Revenue int `json:"revenue"`
	COGS    int `json:"cogs"`
	Profit  int `json:"profit"`
}

type TopProduct struct {
	Name     string `json:"name"`
	Quantity int    `json:"quantity"`
	Revenue  int    `json:"revenue"`
}

type DashboardStats struct {
	TotalProducts     int           `json:"total_products"`
	LowStockCount     int           `json:"low_stock_count"`
	TodayTransactions int           `json:"today_transactions"`
	TodayRevenue      int           `json:"today_revenue"`
	RecentActivity    []Transaction `json:"recent_activity"`
}
