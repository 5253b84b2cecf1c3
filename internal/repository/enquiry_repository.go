package repository

import (
	"context"

	"github.com/jackc/pgx/v5"

	"github.com/spec-kit/driving-records/internal/domain"
)

// EnquiryRepository manages enquiry persistence.
type EnquiryRepository interface {
	Create(ctx context.Context, enq *domain.Enquiry) error
	List(ctx context.Context) ([]domain.Enquiry, error)
	GetByID(ctx context.Context, id string) (*domain.Enquiry, error)
	Update(ctx context.Context, id string, in domain.EnquiryInput) (*domain.Enquiry, error)
	Delete(ctx context.Context, id string) (*domain.Enquiry, error)
}

const enquiryColumns = `id::text, preferred_name, mobile, email, postcode, test_preparation,
        skills_improvement, enq_message, enq_date, replied, reply_date, reply_message`

type enquiryRepository struct {
	db DBTX
}

// NewEnquiryRepository builds the repository.
func NewEnquiryRepository(db DBTX) EnquiryRepository {
	return &enquiryRepository{db: db}
}

func (r *enquiryRepository) Create(ctx context.Context, enq *domain.Enquiry) error {
	const query = `
        INSERT INTO enquiries (id, preferred_name, mobile, email, postcode, test_preparation,
            skills_improvement, enq_message, enq_date, replied, reply_date, reply_message)
        VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12)`
	_, err := r.db.Exec(ctx, query,
		enq.ID,
		enq.PreferredName,
		enq.Mobile,
		enq.Email,
		enq.Postcode,
		enq.TestPreparation,
		enq.SkillsImprovement,
		enq.EnqMessage,
		enq.EnqDate,
		enq.Replied,
		enq.ReplyDate,
		enq.ReplyMessage,
	)
	return classify(err)
}

func (r *enquiryRepository) List(ctx context.Context) ([]domain.Enquiry, error) {
	query := `SELECT ` + enquiryColumns + ` FROM enquiries ORDER BY enq_date, id`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, classify(err)
	}
	defer rows.Close()

	var result []domain.Enquiry
	for rows.Next() {
		enq, err := scanEnquiry(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, *enq)
	}
	return result, classify(rows.Err())
}

func (r *enquiryRepository) GetByID(ctx context.Context, id string) (*domain.Enquiry, error) {
	query := `SELECT ` + enquiryColumns + ` FROM enquiries WHERE id=$1`
	enq, err := scanEnquiry(r.db.QueryRow(ctx, query, id))
	if err != nil {
		return nil, classify(err)
	}
	return enq, nil
}

// Update overwrites the required fields and only those optional fields present
// in the input. A replyDate sent as null clears the column.
func (r *enquiryRepository) Update(ctx context.Context, id string, in domain.EnquiryInput) (*domain.Enquiry, error) {
	query := `
        UPDATE enquiries SET
            preferred_name=$2, mobile=$3, email=$4, postcode=$5,
            test_preparation=$6, skills_improvement=$7, enq_message=$8,
            enq_date=COALESCE($9, enq_date),
            replied=COALESCE($10, replied),
            reply_date=CASE WHEN $13::boolean THEN $11 ELSE reply_date END,
            reply_message=COALESCE($12, reply_message)
        WHERE id=$1
        RETURNING ` + enquiryColumns
	enq, err := scanEnquiry(r.db.QueryRow(ctx, query,
		id,
		in.PreferredName,
		in.Mobile,
		in.Email,
		in.Postcode,
		in.TestPreparation,
		in.SkillsImprovement,
		in.EnqMessage,
		in.EnqDate.Ptr(),
		in.Replied,
		in.ReplyDate.Ptr(),
		in.ReplyMessage,
		in.ReplyDate.Set,
	))
	if err != nil {
		return nil, classify(err)
	}
	return enq, nil
}

func (r *enquiryRepository) Delete(ctx context.Context, id string) (*domain.Enquiry, error) {
	query := `DELETE FROM enquiries WHERE id=$1 RETURNING ` + enquiryColumns
	enq, err := scanEnquiry(r.db.QueryRow(ctx, query, id))
	if err != nil {
		return nil, classify(err)
	}
	return enq, nil
}

func scanEnquiry(row pgx.Row) (*domain.Enquiry, error) {
	var enq domain.Enquiry
	if err := row.Scan(
		&enq.ID,
		&enq.PreferredName,
		&enq.Mobile,
		&enq.Email,
		&enq.Postcode,
		&enq.TestPreparation,
		&enq.SkillsImprovement,
		&enq.EnqMessage,
		&enq.EnqDate,
		&enq.Replied,
		&enq.ReplyDate,
		&enq.ReplyMessage,
	); err != nil {
		return nil, err
	}
	return &enq, nil
}
