package store

const (
	createUser = `INSERT INTO users (name, email, password_hash, role)
    VALUES ($1, $2, $3, $4)
    RETURNING user_id, name, email, password_hash, role, created_at;`

	findUserByEmail = `SELECT user_id, name, email, password_hash, role, created_at
    FROM users
    WHERE email = $1;`

	findUserByID = `SELECT user_id, name, email, password_hash, role, created_at
    FROM users
    WHERE user_id = $1;`

	addRefreshToken = `INSERT INTO refresh_tokens (token, user_id, expires_at)
    VALUES ($1, $2, $3);`

	// deleteRefreshToken is the serialization point of refresh-token
	// rotation: of any number of concurrent refresh calls presenting the
	// same token, exactly one observes an affected row.
	deleteRefreshToken = `DELETE FROM refresh_tokens
    WHERE token = $1;`

	deleteExpiredRefreshTokens = `DELETE FROM refresh_tokens
    WHERE user_id = $1 AND expires_at < NOW();`

	createTask = `INSERT INTO tasks (title, description, due_date)
    VALUES ($1, $2, $3)
    RETURNING task_id, title, description, due_date, created_at;`

	findTaskByID = `SELECT task_id, title, description, due_date, created_at
    FROM tasks
    WHERE task_id = $1;`

	findAllTasks = `SELECT task_id, title, description, due_date, created_at
    FROM tasks
    ORDER BY task_id;`

	deleteAssignmentsByTask = `DELETE FROM user_tasks
    WHERE task_id = $1;`

	deleteTask = `DELETE FROM tasks
    WHERE task_id = $1;`

	createAssignment = `INSERT INTO user_tasks (user_id, task_id, status)
    VALUES ($1, $2, $3)
    RETURNING user_task_id, user_id, task_id, status, created_at;`

	assignmentExists = `SELECT EXISTS (
        SELECT 1 FROM user_tasks WHERE user_id = $1 AND task_id = $2
    );`

	updateAssignmentStatus = `UPDATE user_tasks
    SET status = $1
    WHERE user_task_id = $2
    RETURNING user_task_id, user_id, task_id, status, created_at;`

	deleteAssignment = `DELETE FROM user_tasks
    WHERE user_task_id = $1;`
)

// assignmentColumns are the columns selected by the squirrel-built joined
// assignment queries, in scan order: assignment fields first, then the
// resolved task fields.
var assignmentColumns = []string{
	"ut.user_task_id",
	"ut.user_id",
	"ut.task_id",
	"ut.status",
	"ut.created_at",
	"t.title",
	"t.description",
	"t.due_date",
	"t.created_at",
}
