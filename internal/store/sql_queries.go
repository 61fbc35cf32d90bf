package store

const (
	createUser = `INSERT INTO users (email, password_hash, name)
    VALUES ($1, $2, $3)
    RETURNING user_id, email, password_hash, name, created_at;`

	findUserByEmail = `SELECT user_id, email, password_hash, name, created_at
    FROM users
    WHERE email = $1;`

	findUserByID = `SELECT user_id, email, password_hash, name, created_at
    FROM users
    WHERE user_id = $1;`

	findAllUsers = `SELECT user_id, email, password_hash, name, created_at
    FROM users
    ORDER BY user_id;`
)
