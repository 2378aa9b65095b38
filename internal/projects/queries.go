package projects

const (
	querySearchNearest = `
		SELECT
			id::text,
			title,
			description,
			demo_url,
			image_url,
			embedding,
			created_at,
			updated_at
		FROM projects
		WHERE embedding IS NOT NULL
		ORDER BY embedding <=> $1
		LIMIT $2
	`

	querySearchNearestExcluding = `
		SELECT
			id::text,
			title,
			description,
			demo_url,
			image_url,
			embedding,
			created_at,
			updated_at
		FROM projects
		WHERE embedding IS NOT NULL
		  AND NOT (id = ANY($3::uuid[]))
		ORDER BY embedding <=> $1
		LIMIT $2
	`

	queryList = `
		SELECT
			id::text,
			title,
			description,
			demo_url,
			image_url,
			created_at,
			updated_at
		FROM projects
		ORDER BY created_at ASC
	`

	queryInsert = `
		INSERT INTO projects (title, description, demo_url, image_url, embedding)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id::text
	`

	queryClear = `DELETE FROM projects`

	queryIDByTitle = `SELECT id::text FROM projects WHERE title = $1`

	querySnapshotVersion = `
		INSERT INTO project_versions (project_id, embedding)
		SELECT id, embedding
		FROM projects
		WHERE id = $1 AND embedding IS NOT NULL
	`

	queryUpdate = `
		UPDATE projects
		SET title = $2,
		    description = $3,
		    demo_url = $4,
		    image_url = $5,
		    embedding = $6,
		    updated_at = now()
		WHERE id = $1
	`

	queryPruneVersions = `
		DELETE FROM project_versions
		WHERE project_id = $1
		  AND version_id NOT IN (
			SELECT version_id
			FROM project_versions
			WHERE project_id = $1
			ORDER BY created_at DESC
			LIMIT $2
		  )
	`
)
