package catalog

import (
	"testing"

	"doctorportal/models"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/mongo"
)

type fakeServiceRepo struct {
	services []models.Service
}

func (f *fakeServiceRepo) GetAll() ([]models.Service, error) {
	return f.services, nil
}

func (f *fakeServiceRepo) GetNames() ([]models.ServiceSummary, error) {
	names := make([]models.ServiceSummary, len(f.services))
	for i, s := range f.services {
		names[i] = models.ServiceSummary{Name: s.Name}
	}
	return names, nil
}

type fakeBookingRepo struct {
	bookings []models.Booking
}

func (f *fakeBookingRepo) GetByID(id string) (*models.Booking, error) { return nil, nil }
func (f *fakeBookingRepo) FindByPatient(patient string) ([]models.Booking, error) {
	return nil, nil
}
func (f *fakeBookingRepo) FindByDate(date string) ([]models.Booking, error) {
	var out []models.Booking
	for _, b := range f.bookings {
		if b.Date == date {
			out = append(out, b)
		}
	}
	return out, nil
}
func (f *fakeBookingRepo) FindByKey(treatment, date, patient string) (*models.Booking, error) {
	return nil, nil
}
func (f *fakeBookingRepo) Insert(b *models.Booking) (*mongo.InsertOneResult, error) {
	return &mongo.InsertOneResult{}, nil
}
func (f *fakeBookingRepo) MarkPaid(id string, transactionID string) (*mongo.UpdateResult, error) {
	return &mongo.UpdateResult{}, nil
}

func TestDefaultCatalogService(t *testing.T) {
	svc := &DefaultCatalogService{
		Services: &fakeServiceRepo{services: fixtureServices()},
		Bookings: &fakeBookingRepo{bookings: []models.Booking{
			{Treatment: "Teeth Cleaning", Date: "May 11, 2022", Slot: "08.00 AM - 09.00 AM", Patient: "a@x.com"},
		}},
	}

	t.Run("Availability Filters Booked Slots", func(t *testing.T) {
		out, err := svc.Availability("May 11, 2022")
		assert.NoError(t, err)
		assert.Len(t, out, 2)
		assert.Equal(t, []string{"09.00 AM - 10.00 AM", "10.00 AM - 11.00 AM"}, out[0].Slots)
	})

	t.Run("ListNames Is Idempotent", func(t *testing.T) {
		first, err := svc.ListNames()
		assert.NoError(t, err)
		second, err := svc.ListNames()
		assert.NoError(t, err)
		assert.Equal(t, first, second)
		assert.Equal(t, "Teeth Cleaning", first[0].Name)
	})
}
