// Package firestore backs the repository contracts with Cloud Firestore.
// Atomic batches run inside RunTransaction; the ledger's same-date
// tiebreaker comes from a counter document incremented in the same
// transaction as each append.
package firestore

import (
	"context"
	"fmt"

	"cloud.google.com/go/firestore"
	firebase "firebase.google.com/go/v4"
	"google.golang.org/api/option"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"frota-backend/internal/repository"
)

const (
	collTires        = "tires"
	collMovements    = "tireMovements"
	collVehicles     = "vehicles"
	collMaintenances = "maintenances"
	collUsers        = "users"
	collCounters     = "counters"

	movementSeqDoc = "tireMovementSeq"
	dateLayout     = "2006-01-02"
)

// Store bundles the Firestore-backed repositories and owns the client.
type Store struct {
	repository.Store
	client *firestore.Client
}

// NewStore initializes the Firebase app and wires every repository around
// one shared client. credentialsFile may be empty to use application
// default credentials.
func NewStore(ctx context.Context, projectID, credentialsFile string) (*Store, error) {
	var opts []option.ClientOption
	if credentialsFile != "" {
		opts = append(opts, option.WithCredentialsFile(credentialsFile))
	}
	app, err := firebase.NewApp(ctx, &firebase.Config{ProjectID: projectID}, opts...)
	if err != nil {
		return nil, fmt.Errorf("initializing firebase app: %w", err)
	}
	client, err := app.Firestore(ctx)
	if err != nil {
		return nil, fmt.Errorf("opening firestore client: %w", err)
	}
	return &Store{
		Store: repository.Store{
			Tires:        &tireRepository{client: client},
			Movements:    &movementRepository{client: client},
			Vehicles:     &vehicleRepository{client: client},
			Maintenances: &maintenanceRepository{client: client},
			Users:        &userRepository{client: client},
		},
		client: client,
	}, nil
}

func (s *Store) Close() error {
	return s.client.Close()
}

func isNotFound(err error) bool {
	return status.Code(err) == codes.NotFound
}

// readSeq returns the current ledger counter inside tx. Firestore requires
// all transaction reads before any write, so the incremented value is
// written back separately via writeSeq.
func readSeq(tx *firestore.Transaction, client *firestore.Client) (int64, error) {
	snap, err := tx.Get(client.Collection(collCounters).Doc(movementSeqDoc))
	if err != nil {
		if isNotFound(err) {
			return 0, nil
		}
		return 0, err
	}
	raw, err := snap.DataAt("Value")
	if err != nil {
		return 0, err
	}
	v, ok := raw.(int64)
	if !ok {
		return 0, fmt.Errorf("movement seq counter holds %T, want int64", raw)
	}
	return v, nil
}

func writeSeq(tx *firestore.Transaction, client *firestore.Client, v int64) error {
	return tx.Set(client.Collection(collCounters).Doc(movementSeqDoc), map[string]interface{}{"Value": v})
}
