package repository

import "context"

// TransactionManager defines the interface for managing database transactions.
// This allows the use case layer to handle transactions without depending on a specific DB driver like GORM.
type TransactionManager interface {
	// Execute runs a function within a database transaction.
	// If the function returns an error, the transaction is rolled back. Otherwise, it's committed.
	// All repository operations within the function will use the same database transaction.
	Execute(ctx context.Context, fn func(txRepoFactory RepositoryFactory) error) error
}

// RepositoryFactory provides a way to get repository instances that are bound to a specific transaction.
// This ensures all repository operations within a transaction use the same database connection.
type RepositoryFactory interface {
	// AdminRepo returns an AdminRepository bound to the current transaction.
	AdminRepo() AdminRepository

	// SupplierRepo returns a SupplierRepository bound to the current transaction.
	SupplierRepo() SupplierRepository

	// BuyerRepo returns a BuyerRepository bound to the current transaction.
	BuyerRepo() BuyerRepository

	// ProductRepo returns a ProductRepository bound to the current transaction.
	ProductRepo() ProductRepository

	// ActivityRepo returns an ActivityLogRepository bound to the current transaction.
	ActivityRepo() ActivityLogRepository

	// AlertRepo returns an AlertRepository bound to the current transaction.
	AlertRepo() AlertRepository

	// InquiryRepo returns an InquiryRepository bound to the current transaction.
	InquiryRepo() InquiryRepository
}
