package seed

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"

	"invoice-dashboard-backend/internal/models"
)

// Placeholder dataset for local development. Amounts are in cents.

type seedUser struct {
	ID       uuid.UUID
	Name     string
	Email    string
	Password string // plaintext, hashed at seed time
}

type seedInvoice struct {
	CustomerID uuid.UUID
	Amount     int64
	Status     models.InvoiceStatus
	Date       datatypes.Date
}

func day(year int, month time.Month, d int) datatypes.Date {
	return datatypes.Date(time.Date(year, month, d, 0, 0, 0, 0, time.UTC))
}

var (
	customerDelba   = uuid.MustParse("d6e15727-9fe1-4961-8c5b-ea44a9bd81aa")
	customerLee     = uuid.MustParse("3958dc9e-712f-4377-85e9-fec4b6a6442a")
	customerHector  = uuid.MustParse("3958dc9e-742f-4377-85e9-fec4b6a6442a")
	customerSteven  = uuid.MustParse("76d65c26-f784-44a2-ac19-586678f7c2f2")
	customerMichael = uuid.MustParse("cc27c14a-0acf-4f4a-a6c9-d45682c144b9")
	customerAmy     = uuid.MustParse("13d07535-c59e-4157-a011-f8d2ef4e0cbb")
)

var users = []seedUser{
	{
		ID:       uuid.MustParse("410544b2-4001-4271-9855-fec4b6a6442a"),
		Name:     "User",
		Email:    "user@nextmail.com",
		Password: "123456",
	},
}

var customers = []models.Customer{
	{ID: customerDelba, Name: "Delba de Oliveira", Email: "delba@oliveira.com", ImageURL: "/customers/delba-de-oliveira.png"},
	{ID: customerLee, Name: "Lee Robinson", Email: "lee@robinson.com", ImageURL: "/customers/lee-robinson.png"},
	{ID: customerHector, Name: "Hector Simpson", Email: "hector@simpson.com", ImageURL: "/customers/hector-simpson.png"},
	{ID: customerSteven, Name: "Steven Tey", Email: "steven@tey.com", ImageURL: "/customers/steven-tey.png"},
	{ID: customerMichael, Name: "Michael Novotny", Email: "michael@novotny.com", ImageURL: "/customers/michael-novotny.png"},
	{ID: customerAmy, Name: "Amy Burns", Email: "amy@burns.com", ImageURL: "/customers/amy-burns.png"},
}

var invoices = []seedInvoice{
	{CustomerID: customerDelba, Amount: 15795, Status: models.StatusPending, Date: day(2022, time.December, 6)},
	{CustomerID: customerLee, Amount: 20348, Status: models.StatusPending, Date: day(2022, time.November, 14)},
	{CustomerID: customerMichael, Amount: 3040, Status: models.StatusPaid, Date: day(2022, time.October, 29)},
	{CustomerID: customerHector, Amount: 44800, Status: models.StatusPaid, Date: day(2023, time.September, 10)},
	{CustomerID: customerAmy, Amount: 34577, Status: models.StatusPending, Date: day(2023, time.August, 5)},
	{CustomerID: customerSteven, Amount: 54246, Status: models.StatusPending, Date: day(2023, time.July, 16)},
	{CustomerID: customerDelba, Amount: 666, Status: models.StatusPending, Date: day(2023, time.June, 27)},
	{CustomerID: customerHector, Amount: 32545, Status: models.StatusPaid, Date: day(2023, time.June, 9)},
	{CustomerID: customerAmy, Amount: 1250, Status: models.StatusPaid, Date: day(2023, time.June, 17)},
	{CustomerID: customerSteven, Amount: 8546, Status: models.StatusPaid, Date: day(2023, time.February, 14)},
	{CustomerID: customerLee, Amount: 500, Status: models.StatusPaid, Date: day(2023, time.January, 31)},
	{CustomerID: customerMichael, Amount: 8945, Status: models.StatusPaid, Date: day(2023, time.March, 4)},
	{CustomerID: customerDelba, Amount: 8945, Status: models.StatusPaid, Date: day(2023, time.June, 18)},
}

var revenue = []models.Revenue{
	{Month: "Jan", Revenue: 200000},
	{Month: "Feb", Revenue: 180000},
	{Month: "Mar", Revenue: 220000},
	{Month: "Apr", Revenue: 250000},
	{Month: "May", Revenue: 230000},
	{Month: "Jun", Revenue: 320000},
	{Month: "Jul", Revenue: 350000},
	{Month: "Aug", Revenue: 370000},
	{Month: "Sep", Revenue: 250000},
	{Month: "Oct", Revenue: 280000},
	{Month: "Nov", Revenue: 300000},
	{Month: "Dec", Revenue: 480000},
}
