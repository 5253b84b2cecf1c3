package repository

import (
	"context"

	"github.com/jackc/pgx/v5"

	"github.com/spec-kit/driving-records/internal/domain"
)

// CustomerRepository manages customer persistence.
type CustomerRepository interface {
	Create(ctx context.Context, cust *domain.Customer) error
	List(ctx context.Context) ([]domain.Customer, error)
	GetByID(ctx context.Context, id string) (*domain.Customer, error)
	Update(ctx context.Context, id string, in domain.CustomerInput) (*domain.Customer, error)
	Delete(ctx context.Context, id string) (*domain.Customer, error)
}

const customerColumns = `id::text, first_name, middle_name, preferred_name, last_name, mobile, email,
        first_line_of_address, second_line_of_address, postcode, driving_licence_num,
        test_preparation, test_date, test_centre, skills_improvement, date_added,
        enquiry_ids::text[]`

type customerRepository struct {
	db DBTX
}

// NewCustomerRepository builds the repository.
func NewCustomerRepository(db DBTX) CustomerRepository {
	return &customerRepository{db: db}
}

func (r *customerRepository) Create(ctx context.Context, cust *domain.Customer) error {
	const query = `
        INSERT INTO customers (id, first_name, middle_name, preferred_name, last_name, mobile, email,
            first_line_of_address, second_line_of_address, postcode, driving_licence_num,
            test_preparation, test_date, test_centre, skills_improvement, date_added, enquiry_ids)
        VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14,$15,$16,$17::uuid[])`
	_, err := r.db.Exec(ctx, query,
		cust.ID,
		cust.FirstName,
		cust.MiddleName,
		cust.PreferredName,
		cust.LastName,
		cust.Mobile,
		cust.Email,
		cust.FirstLineOfAddress,
		cust.SecondLineOfAddress,
		cust.Postcode,
		cust.DrivingLicenceNum,
		cust.TestPreparation,
		cust.TestDate,
		cust.TestCentre,
		cust.SkillsImprovement,
		cust.DateAdded,
		cust.Enquiries,
	)
	return classify(err)
}

func (r *customerRepository) List(ctx context.Context) ([]domain.Customer, error) {
	query := `SELECT ` + customerColumns + ` FROM customers ORDER BY date_added, id`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, classify(err)
	}
	defer rows.Close()

	var result []domain.Customer
	for rows.Next() {
		cust, err := scanCustomer(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, *cust)
	}
	return result, classify(rows.Err())
}

func (r *customerRepository) GetByID(ctx context.Context, id string) (*domain.Customer, error) {
	query := `SELECT ` + customerColumns + ` FROM customers WHERE id=$1`
	cust, err := scanCustomer(r.db.QueryRow(ctx, query, id))
	if err != nil {
		return nil, classify(err)
	}
	return cust, nil
}

// Update overwrites the required fields and only those optional fields present
// in the input. Nullable columns sent as null are cleared.
func (r *customerRepository) Update(ctx context.Context, id string, in domain.CustomerInput) (*domain.Customer, error) {
	query := `
        UPDATE customers SET
            first_name=$2,
            middle_name=CASE WHEN $18::boolean THEN $3 ELSE middle_name END,
            preferred_name=$4, last_name=$5, mobile=$6, email=$7,
            first_line_of_address=$8,
            second_line_of_address=CASE WHEN $19::boolean THEN $9 ELSE second_line_of_address END,
            postcode=$10, driving_licence_num=$11, test_preparation=$12,
            test_date=CASE WHEN $20::boolean THEN $13 ELSE test_date END,
            test_centre=CASE WHEN $21::boolean THEN $14 ELSE test_centre END,
            skills_improvement=$15,
            date_added=COALESCE($16, date_added),
            enquiry_ids=$17::uuid[]
        WHERE id=$1
        RETURNING ` + customerColumns
	cust, err := scanCustomer(r.db.QueryRow(ctx, query,
		id,
		in.FirstName,
		in.MiddleName.Ptr(),
		in.PreferredName,
		in.LastName,
		in.Mobile,
		in.Email,
		in.FirstLineOfAddress,
		in.SecondLineOfAddress.Ptr(),
		in.Postcode,
		in.DrivingLicenceNum,
		in.TestPreparation,
		in.TestDate.Ptr(),
		in.TestCentre.Ptr(),
		in.SkillsImprovement,
		in.DateAdded.Ptr(),
		in.Enquiries,
		in.MiddleName.Set,
		in.SecondLineOfAddress.Set,
		in.TestDate.Set,
		in.TestCentre.Set,
	))
	if err != nil {
		return nil, classify(err)
	}
	return cust, nil
}

func (r *customerRepository) Delete(ctx context.Context, id string) (*domain.Customer, error) {
	query := `DELETE FROM customers WHERE id=$1 RETURNING ` + customerColumns
	cust, err := scanCustomer(r.db.QueryRow(ctx, query, id))
	if err != nil {
		return nil, classify(err)
	}
	return cust, nil
}

func scanCustomer(row pgx.Row) (*domain.Customer, error) {
	var cust domain.Customer
	if err := row.Scan(
		&cust.ID,
		&cust.FirstName,
		&cust.MiddleName,
		&cust.PreferredName,
		&cust.LastName,
		&cust.Mobile,
		&cust.Email,
		&cust.FirstLineOfAddress,
		&cust.SecondLineOfAddress,
		&cust.Postcode,
		&cust.DrivingLicenceNum,
		&cust.TestPreparation,
		&cust.TestDate,
		&cust.TestCentre,
		&cust.SkillsImprovement,
		&cust.DateAdded,
		&cust.Enquiries,
	); err != nil {
		return nil, err
	}
	if cust.Enquiries == nil {
		cust.Enquiries = []string{}
	}
	return &cust, nil
}
