package repository

import (
	"database/sql"

	"blogapi/models"
)

// scanPosts reads joined post rows. The category columns come from a LEFT
// JOIN and may be NULL; the author join is inner, so its columns always scan.
func scanPosts(rows *sql.Rows) ([]*models.Post, error) {
	var list []*models.Post
	for rows.Next() {
		p := &models.Post{}
		var (
			categoryID sql.NullInt64
			catName    sql.NullString
			catCreated sql.NullTime
			author     models.UserSummary
		)
		err := rows.Scan(
			&p.ID, &p.Title, &p.Slug, &p.Description, &p.Content,
			&categoryID, &p.AuthorID, &p.Published, &p.CreatedAt,
			&catName, &catCreated,
			&author.ID, &author.Email, &author.Name, &author.Role,
		)
		if err != nil {
			return nil, err
		}
		if categoryID.Valid {
			p.CategoryID = &categoryID.Int64
			if catName.Valid {
				p.Category = &models.Category{
					ID:        categoryID.Int64,
					Name:      catName.String,
					CreatedAt: catCreated.Time,
				}
			}
		}
		p.Author = &author
		list = append(list, p)
	}
	return list, rows.Err()
}
