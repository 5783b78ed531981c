package account

import (
	"testing"
	"time"

	"doctorportal/auth"
	"doctorportal/models"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

type memUserRepo struct {
	docs map[string]bson.M
}

func newMemUserRepo() *memUserRepo {
	return &memUserRepo{docs: make(map[string]bson.M)}
}

func (m *memUserRepo) GetByEmail(email string) (*models.User, error) {
	doc, ok := m.docs[email]
	if !ok {
		return nil, nil
	}
	u := &models.User{Email: email}
	if role, ok := doc["role"].(models.Role); ok {
		u.Role = role
	}
	return u, nil
}

func (m *memUserRepo) GetAll() ([]bson.M, error) {
	var out []bson.M
	for _, doc := range m.docs {
		out = append(out, doc)
	}
	return out, nil
}

func (m *memUserRepo) Upsert(email string, doc bson.M) (*mongo.UpdateResult, error) {
	_, existed := m.docs[email]
	if !existed {
		m.docs[email] = bson.M{}
	}
	for k, v := range doc {
		m.docs[email][k] = v
	}
	if existed {
		return &mongo.UpdateResult{MatchedCount: 1, ModifiedCount: 1}, nil
	}
	return &mongo.UpdateResult{UpsertedCount: 1, UpsertedID: email}, nil
}

func (m *memUserRepo) SetRole(email string, role models.Role) (*mongo.UpdateResult, error) {
	doc, ok := m.docs[email]
	if !ok {
		return &mongo.UpdateResult{}, nil
	}
	doc["role"] = role
	return &mongo.UpdateResult{MatchedCount: 1, ModifiedCount: 1}, nil
}

type memDoctorRepo struct {
	doctors []models.Doctor
}

func (m *memDoctorRepo) GetAll() ([]models.Doctor, error) {
	return m.doctors, nil
}

func (m *memDoctorRepo) Insert(d *models.Doctor) (*mongo.InsertOneResult, error) {
	m.doctors = append(m.doctors, *d)
	return &mongo.InsertOneResult{}, nil
}

func (m *memDoctorRepo) DeleteByEmail(email string) (*mongo.DeleteResult, error) {
	for i, d := range m.doctors {
		if d.Email == email {
			m.doctors = append(m.doctors[:i], m.doctors[i+1:]...)
			return &mongo.DeleteResult{DeletedCount: 1}, nil
		}
	}
	return &mongo.DeleteResult{}, nil
}

func newAccountService(users *memUserRepo, doctors *memDoctorRepo) *DefaultAccountService {
	return &DefaultAccountService{
		Users:   users,
		Doctors: doctors,
		Tokens:  auth.NewTokenManager("test-secret", time.Hour),
	}
}

func TestUpsertUser(t *testing.T) {
	t.Run("Creates Profile And Issues Verifiable Token", func(t *testing.T) {
		users := newMemUserRepo()
		svc := newAccountService(users, &memDoctorRepo{})

		result, err := svc.UpsertUser("a@x.com", map[string]interface{}{"name": "Alice"})

		assert.NoError(t, err)
		assert.EqualValues(t, 1, result.Result.UpsertedCount)
		assert.Equal(t, "a@x.com", users.docs["a@x.com"]["email"])
		assert.Equal(t, "Alice", users.docs["a@x.com"]["name"])

		email, err := svc.Tokens.Verify(result.Token)
		assert.NoError(t, err)
		assert.Equal(t, "a@x.com", email)
	})

	t.Run("Existing Profile Still Gets A Fresh Token", func(t *testing.T) {
		users := newMemUserRepo()
		svc := newAccountService(users, &memDoctorRepo{})

		_, err := svc.UpsertUser("a@x.com", map[string]interface{}{"name": "Alice"})
		assert.NoError(t, err)
		result, err := svc.UpsertUser("a@x.com", map[string]interface{}{"name": "Alice B"})

		assert.NoError(t, err)
		assert.NotEmpty(t, result.Token)
		assert.EqualValues(t, 1, result.Result.MatchedCount)
		assert.Equal(t, "Alice B", users.docs["a@x.com"]["name"])
	})

	t.Run("Path Email Overrides Body Email", func(t *testing.T) {
		users := newMemUserRepo()
		svc := newAccountService(users, &memDoctorRepo{})

		_, err := svc.UpsertUser("a@x.com", map[string]interface{}{"email": "spoofed@x.com"})

		assert.NoError(t, err)
		assert.Equal(t, "a@x.com", users.docs["a@x.com"]["email"])
	})

	t.Run("Invalid Email Rejected", func(t *testing.T) {
		svc := newAccountService(newMemUserRepo(), &memDoctorRepo{})

		_, err := svc.UpsertUser("not-an-email", nil)
		assert.Error(t, err)
	})
}

func TestPromoteAdmin(t *testing.T) {
	t.Run("Sets Admin Role", func(t *testing.T) {
		users := newMemUserRepo()
		svc := newAccountService(users, &memDoctorRepo{})

		_, err := svc.UpsertUser("a@x.com", nil)
		assert.NoError(t, err)

		result, err := svc.PromoteAdmin("a@x.com")
		assert.NoError(t, err)
		assert.EqualValues(t, 1, result.ModifiedCount)

		u, err := users.GetByEmail("a@x.com")
		assert.NoError(t, err)
		assert.True(t, u.Role.IsAdmin())
	})

	t.Run("Unknown Email Matches Nothing", func(t *testing.T) {
		svc := newAccountService(newMemUserRepo(), &memDoctorRepo{})

		result, err := svc.PromoteAdmin("ghost@x.com")
		assert.NoError(t, err)
		assert.EqualValues(t, 0, result.MatchedCount)
	})
}

func TestDoctorRoster(t *testing.T) {
	t.Run("Add List Remove", func(t *testing.T) {
		doctors := &memDoctorRepo{}
		svc := newAccountService(newMemUserRepo(), doctors)

		_, err := svc.AddDoctor(models.Doctor{Name: "Dr. Roy", Email: "roy@clinic.com", Specialty: "Orthodontics"})
		assert.NoError(t, err)

		list, err := svc.ListDoctors()
		assert.NoError(t, err)
		assert.Len(t, list, 1)

		result, err := svc.RemoveDoctor("roy@clinic.com")
		assert.NoError(t, err)
		assert.EqualValues(t, 1, result.DeletedCount)
	})

	t.Run("Doctor Without Valid Email Rejected", func(t *testing.T) {
		svc := newAccountService(newMemUserRepo(), &memDoctorRepo{})

		_, err := svc.AddDoctor(models.Doctor{Name: "Dr. Roy", Email: "nope"})
		assert.Error(t, err)
	})
}
