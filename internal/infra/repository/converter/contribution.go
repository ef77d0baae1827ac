package converter

import (
	"baby-registry/internal/domain/contribution"
	sqlc "baby-registry/internal/infra/sqlc/generated"
	"baby-registry/internal/pkg/pgconv"
)

func ContributionToInsertParams(c *contribution.Contribution) sqlc.InsertContributionParams {
	who := c.Contributor()
	return sqlc.InsertContributionParams{
		ID:                 c.ID(),
		ItemID:             c.ItemID(),
		Amount:             pgconv.DecimalToNumeric(c.Amount()),
		ContributorName:    who.Name(),
		ContributorSurname: who.Surname(),
		ContributorEmail:   who.Email().String(),
		Message:            pgconv.OptionalStringToPgtype(c.Message()),
		PaymentMethod:      c.PaymentMethod().String(),
		CreatedAt:          pgconv.TimeToPgtype(c.CreatedAt()),
	}
}

func ContributionFromRow(row sqlc.Contributions) (*contribution.Contribution, error) {
	amount, err := pgconv.DecimalFromNumeric(row.Amount)
	if err != nil {
		return nil, err
	}
	return contribution.ReconstructContribution(
		row.ID,
		row.ItemID,
		amount,
		row.ContributorName,
		row.ContributorSurname,
		row.ContributorEmail,
		pgconv.StringFromPgtype(row.Message),
		contribution.PaymentMethod(row.PaymentMethod),
		pgconv.TimeFromPgtype(row.CreatedAt),
	), nil
}
