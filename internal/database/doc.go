// Package database provides database connectivity for the Gambit API.
//
// The database package abstracts SurrealDB operations and provides
// a consistent interface for data access across the application.
//
// # Database Interface
//
// The Database interface defines core operations:
//
//	type Database interface {
//	    Query(ctx context.Context, query string, vars map[string]interface{}) ([]interface{}, error)
//	    QueryOne(ctx context.Context, query string, vars map[string]interface{}) (interface{}, error)
//	    Execute(ctx context.Context, query string, vars map[string]interface{}) error
//	    Close() error
//	}
//
// # Connection Management
//
// Connect to SurrealDB:
//
//	db := database.NewSurrealDB(database.Config{
//	    Host:      "localhost",
//	    Port:      "8000",
//	    User:      "root",
//	    Password:  "secret",
//	    Namespace: "gambit",
//	    Database:  "main",
//	})
//	if err := db.Connect(ctx); err != nil {
//	    // handle connection failure
//	}
//
// # Error Types
//
// Standard error types for data operations:
//
//   - ErrNotFound: Record does not exist
//   - ErrDuplicate: Unique constraint violation
//   - ErrConnection: Database connection failed
//
// # Transactions
//
// Multi-statement writes use the TxBuilder, which namespaces each
// statement's variables and wraps the batch in BEGIN/COMMIT:
//
//	tb := database.NewTxBuilder()
//	tb.Add("UPDATE ONLY type::record($id) SET card_count += 1", vars)
//	results, err := database.ExecuteTransaction(ctx, db, tb)
package database
