package merchant

import "golang.org/x/crypto/bcrypt"

// StoreCreator provisions the store a new merchant account will own.
// Implemented in main against the store service.
type StoreCreator interface {
	CreateStore(name string) (int, error)
}

type Service struct {
	repo   Repository
	stores StoreCreator
}

func NewService(repo Repository, stores StoreCreator) *Service {
	return &Service{repo: repo, stores: stores}
}

func (s *Service) GetByID(id int) (Merchant, error) {
	return s.repo.GetByID(id)
}

// Register creates the store first, then the owning account. The store
// name doubles as the merchant-facing shop name.
func (s *Service) Register(m Merchant, storeName string) (Merchant, error) {
	if _, err := s.repo.GetByEmail(m.Email); err == nil {
		return Merchant{}, ErrEmailExists
	} else if err != ErrNotFound {
		return Merchant{}, err
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(m.Password), bcrypt.DefaultCost)
	if err != nil {
		return Merchant{}, err
	}
	m.Password = string(hashed)

	storeID, err := s.stores.CreateStore(storeName)
	if err != nil {
		return Merchant{}, err
	}
	m.StoreID = storeID

	return s.repo.Create(m)
}

func (s *Service) Authenticate(email, password string) (Merchant, error) {
	m, err := s.repo.GetByEmail(email)
	if err != nil {
		return Merchant{}, ErrInvalidCredentials
	}

	if bcrypt.CompareHashAndPassword([]byte(m.Password), []byte(password)) != nil {
		return Merchant{}, ErrInvalidCredentials
	}

	return m, nil
}
