package converter

import (
	"baby-registry/internal/domain/item"
	sqlc "baby-registry/internal/infra/sqlc/generated"
	"baby-registry/internal/pkg/pgconv"
)

func ItemToCreateParams(it *item.Item) sqlc.CreateItemParams {
	return sqlc.CreateItemParams{
		ID:                it.ID(),
		Name:              it.Name().String(),
		Description:       pgconv.OptionalStringToPgtype(it.Description()),
		Price:             pgconv.DecimalToNumeric(it.Price().Decimal()),
		ContributedAmount: pgconv.DecimalToNumeric(it.ContributedAmount()),
		IsPriority:        it.IsPriority(),
		Category:          pgconv.OptionalStringToPgtype(it.Category()),
		ImageUrl:          pgconv.OptionalStringToPgtype(it.ImageURL()),
		OriginalUrl:       pgconv.OptionalStringToPgtype(it.OriginalURL()),
		CreatedAt:         pgconv.TimeToPgtype(it.CreatedAt()),
	}
}

func ItemToUpdateParams(it *item.Item) sqlc.UpdateItemParams {
	return sqlc.UpdateItemParams{
		ID:          it.ID(),
		Name:        it.Name().String(),
		Description: pgconv.OptionalStringToPgtype(it.Description()),
		Price:       pgconv.DecimalToNumeric(it.Price().Decimal()),
		IsPriority:  it.IsPriority(),
		Category:    pgconv.OptionalStringToPgtype(it.Category()),
		ImageUrl:    pgconv.OptionalStringToPgtype(it.ImageURL()),
		OriginalUrl: pgconv.OptionalStringToPgtype(it.OriginalURL()),
	}
}

func ItemFromRow(row sqlc.Items) (*item.Item, error) {
	price, err := pgconv.DecimalFromNumeric(row.Price)
	if err != nil {
		return nil, err
	}
	contributed, err := pgconv.DecimalFromNumeric(row.ContributedAmount)
	if err != nil {
		return nil, err
	}

	attrs := item.Attributes{
		Name:        row.Name,
		Description: pgconv.StringFromPgtype(row.Description),
		Price:       price,
		IsPriority:  row.IsPriority,
		Category:    pgconv.StringFromPgtype(row.Category),
		ImageURL:    pgconv.StringFromPgtype(row.ImageUrl),
		OriginalURL: pgconv.StringFromPgtype(row.OriginalUrl),
	}
	return item.ReconstructItem(row.ID, attrs, contributed, pgconv.TimeFromPgtype(row.CreatedAt)), nil
}
