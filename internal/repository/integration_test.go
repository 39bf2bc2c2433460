package repository

import (
	"context"
	"flag"
	"fmt"
	"os"
	"testing"
	"time"

	"iot-fleet-inventory/internal/database"
	"iot-fleet-inventory/internal/model"
	apperrors "iot-fleet-inventory/pkg/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

var testDB *database.Database

func TestMain(m *testing.M) {
	flag.Parse()
	if testing.Short() {
		os.Exit(m.Run())
	}

	ctx := context.Background()

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			Image:        "postgres:16-alpine",
			ExposedPorts: []string{"5432/tcp"},
			WaitingFor: wait.ForAll(
				wait.ForListeningPort("5432/tcp"),
				wait.ForLog("database system is ready to accept connections"),
			),
			Env: map[string]string{
				"POSTGRES_USER":     "postgres",
				"POSTGRES_PASSWORD": "postgres",
				"POSTGRES_DB":       "testdb",
			},
		},
		Started: true,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to start PostgreSQL container: %v\n", err)
		os.Exit(1)
	}

	host, err := container.Host(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to get container host: %v\n", err)
		os.Exit(1)
	}
	port, err := container.MappedPort(ctx, "5432")
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to get container port: %v\n", err)
		os.Exit(1)
	}

	dsn := fmt.Sprintf("host=%s port=%s user=postgres password=postgres dbname=testdb sslmode=disable",
		host, port.Port())

	testDB, err = database.Open(dsn)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to open database: %v\n", err)
		os.Exit(1)
	}

	if err := testDB.Migrate(); err != nil {
		fmt.Fprintf(os.Stderr, "failed to migrate: %v\n", err)
		os.Exit(1)
	}

	code := m.Run()

	_ = testDB.Close()
	_ = container.Terminate(ctx)
	os.Exit(code)
}

// resetTables truncates everything between tests, children first.
func resetTables(t *testing.T) {
	t.Helper()
	for _, table := range []string{
		"data_collected", "collecte", "assignement", "composition",
		"sensor", "gateway", "admin", "product",
	} {
		require.NoError(t, testDB.DB.Exec("DELETE FROM "+table).Error)
	}
}

func skipIfShort(t *testing.T) {
	t.Helper()
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}
}

func TestSensorLifecycle(t *testing.T) {
	skipIfShort(t)
	resetTables(t)
	ctx := context.Background()
	repo := NewSensorRepository(testDB)

	sensor := &model.Sensor{Name: "bmp180", IPAddress: "192.168.1.10", Type: "temperature"}
	require.NoError(t, repo.Create(ctx, sensor))
	assert.NotZero(t, sensor.SensorID, "create populates the generated key")
	assert.Equal(t, model.SensorStatusInactive, sensor.Status, "status defaults on create")

	got, err := repo.GetByID(ctx, sensor.SensorID)
	require.NoError(t, err)
	assert.Equal(t, "bmp180", got.Name)

	createdUpdatedAt := got.UpdatedAt

	time.Sleep(20 * time.Millisecond)
	upd := &model.Sensor{Name: "bmp280", IPAddress: "192.168.1.11", Type: "temperature", Status: model.SensorStatusActive}
	require.NoError(t, repo.Update(ctx, sensor.SensorID, upd))

	got, err = repo.GetByID(ctx, sensor.SensorID)
	require.NoError(t, err)
	assert.Equal(t, "bmp280", got.Name)
	assert.Equal(t, model.SensorStatusActive, got.Status)
	assert.WithinDuration(t, createdUpdatedAt, got.UpdatedAt, time.Millisecond,
		"updated_at is not refreshed by updates")

	require.NoError(t, repo.Delete(ctx, sensor.SensorID))

	_, err = repo.GetByID(ctx, sensor.SensorID)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestSensorConditionalMutate(t *testing.T) {
	skipIfShort(t)
	resetTables(t)
	ctx := context.Background()
	repo := NewSensorRepository(testDB)

	err := repo.Update(ctx, 9999, &model.Sensor{Name: "ghost", Status: model.SensorStatusActive})
	assert.ErrorIs(t, err, apperrors.ErrNotFound, "update of a missing row reports not found")

	err = repo.Delete(ctx, 9999)
	assert.ErrorIs(t, err, apperrors.ErrNotFound, "delete of a missing row reports not found")
}

func TestSensorInvalidStatusRejected(t *testing.T) {
	skipIfShort(t)
	resetTables(t)
	ctx := context.Background()
	repo := NewSensorRepository(testDB)

	err := repo.Create(ctx, &model.Sensor{Name: "x", Status: model.SensorStatus("Broken")})
	assert.ErrorIs(t, err, apperrors.ErrInvalidStatus)

	sensor := &model.Sensor{Name: "ok"}
	require.NoError(t, repo.Create(ctx, sensor))
	err = repo.Update(ctx, sensor.SensorID, &model.Sensor{Name: "ok", Status: model.SensorStatus("Broken")})
	assert.ErrorIs(t, err, apperrors.ErrInvalidStatus)
}

func TestAssignementUniqueness(t *testing.T) {
	skipIfShort(t)
	resetTables(t)
	ctx := context.Background()

	gateway := &model.Gateway{Name: "esp32"}
	sensor := &model.Sensor{Name: "bmp180"}
	require.NoError(t, NewGatewayRepository(testDB).Create(ctx, gateway))
	require.NoError(t, NewSensorRepository(testDB).Create(ctx, sensor))

	repo := NewAssignementRepository(testDB)
	a := &model.Assignement{GatewayID: gateway.GatewayID, SensorID: sensor.SensorID}
	require.NoError(t, repo.Create(ctx, a))

	dup := &model.Assignement{GatewayID: gateway.GatewayID, SensorID: sensor.SensorID}
	err := repo.Create(ctx, dup)
	assert.ErrorIs(t, err, apperrors.ErrDuplicateKey)
}

func TestCompositionCascadeOnGatewayDelete(t *testing.T) {
	skipIfShort(t)
	resetTables(t)
	ctx := context.Background()

	gateway := &model.Gateway{Name: "esp32"}
	product := &model.Product{Name: "kit"}
	require.NoError(t, NewGatewayRepository(testDB).Create(ctx, gateway))
	require.NoError(t, NewProductRepository(testDB).Create(ctx, product))

	compRepo := NewCompositionRepository(testDB)
	require.NoError(t, compRepo.Create(ctx, &model.Composition{GatewayID: gateway.GatewayID, ProductID: product.IDProd}))

	require.NoError(t, NewGatewayRepository(testDB).Delete(ctx, gateway.GatewayID))

	rows, err := compRepo.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, rows, "composition rows cascade with the gateway")
}

func TestCompositionCascadeOnProductDelete(t *testing.T) {
	skipIfShort(t)
	resetTables(t)
	ctx := context.Background()

	gateway := &model.Gateway{Name: "esp32"}
	product := &model.Product{Name: "kit"}
	require.NoError(t, NewGatewayRepository(testDB).Create(ctx, gateway))
	require.NoError(t, NewProductRepository(testDB).Create(ctx, product))

	compRepo := NewCompositionRepository(testDB)
	require.NoError(t, compRepo.Create(ctx, &model.Composition{GatewayID: gateway.GatewayID, ProductID: product.IDProd}))

	require.NoError(t, NewProductRepository(testDB).Delete(ctx, product.IDProd))

	rows, err := compRepo.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, rows, "composition rows cascade with the product")
}

func TestAssignementBlocksGatewayDelete(t *testing.T) {
	skipIfShort(t)
	resetTables(t)
	ctx := context.Background()

	gateway := &model.Gateway{Name: "esp32"}
	sensor := &model.Sensor{Name: "bmp180"}
	require.NoError(t, NewGatewayRepository(testDB).Create(ctx, gateway))
	require.NoError(t, NewSensorRepository(testDB).Create(ctx, sensor))
	require.NoError(t, NewAssignementRepository(testDB).Create(ctx, &model.Assignement{
		GatewayID: gateway.GatewayID,
		SensorID:  sensor.SensorID,
	}))

	// No cascade on assignement FKs: the referenced gateway cannot go away
	// while the assignement exists.
	err := NewGatewayRepository(testDB).Delete(ctx, gateway.GatewayID)
	assert.Error(t, err)
}

func TestAssignementBlocksSensorDelete(t *testing.T) {
	skipIfShort(t)
	resetTables(t)
	ctx := context.Background()

	gateway := &model.Gateway{Name: "esp32"}
	sensor := &model.Sensor{Name: "bmp180"}
	require.NoError(t, NewGatewayRepository(testDB).Create(ctx, gateway))
	require.NoError(t, NewSensorRepository(testDB).Create(ctx, sensor))
	require.NoError(t, NewAssignementRepository(testDB).Create(ctx, &model.Assignement{
		GatewayID: gateway.GatewayID,
		SensorID:  sensor.SensorID,
	}))

	err := NewSensorRepository(testDB).Delete(ctx, sensor.SensorID)
	assert.Error(t, err, "sensor delete is refused while an assignement references it")

	// Removing the assignement unblocks the delete.
	require.NoError(t, NewAssignementRepository(testDB).Delete(ctx, gateway.GatewayID, sensor.SensorID))
	require.NoError(t, NewSensorRepository(testDB).Delete(ctx, sensor.SensorID))
}

func TestCompositionRekey(t *testing.T) {
	skipIfShort(t)
	resetTables(t)
	ctx := context.Background()

	g1 := &model.Gateway{Name: "esp32"}
	g2 := &model.Gateway{Name: "arduino"}
	product := &model.Product{Name: "kit"}
	require.NoError(t, NewGatewayRepository(testDB).Create(ctx, g1))
	require.NoError(t, NewGatewayRepository(testDB).Create(ctx, g2))
	require.NoError(t, NewProductRepository(testDB).Create(ctx, product))

	repo := NewCompositionRepository(testDB)
	require.NoError(t, repo.Create(ctx, &model.Composition{GatewayID: g1.GatewayID, ProductID: product.IDProd}))

	require.NoError(t, repo.Update(ctx, g1.GatewayID, product.IDProd, g2.GatewayID, product.IDProd))

	_, err := repo.GetByIDs(ctx, g1.GatewayID, product.IDProd)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)

	moved, err := repo.GetByIDs(ctx, g2.GatewayID, product.IDProd)
	require.NoError(t, err)
	assert.Equal(t, g2.GatewayID, moved.GatewayID)

	err = repo.Update(ctx, g1.GatewayID, product.IDProd, g2.GatewayID, product.IDProd)
	assert.ErrorIs(t, err, apperrors.ErrNotFound, "re-keying a missing tuple reports not found")
}

func TestCollecteAmbiguousPair(t *testing.T) {
	skipIfShort(t)
	resetTables(t)
	ctx := context.Background()

	gateway := &model.Gateway{Name: "esp32"}
	sensor := &model.Sensor{Name: "bmp180"}
	require.NoError(t, NewGatewayRepository(testDB).Create(ctx, gateway))
	require.NoError(t, NewSensorRepository(testDB).Create(ctx, sensor))

	repo := NewCollecteRepository(testDB)
	base := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	for i := 0; i < 3; i++ {
		require.NoError(t, repo.Create(ctx, &model.Collecte{
			SensorID:    sensor.SensorID,
			GatewayID:   gateway.GatewayID,
			CreatedAt:   base.Add(time.Duration(i) * time.Minute),
			Measurement: float64(20 + i),
			Unit:        "C",
		}))
	}

	// Three timestamped rows share the pair; the prefix lookup returns one.
	got, err := repo.GetByIDs(ctx, sensor.SensorID, gateway.GatewayID)
	require.NoError(t, err)
	assert.Equal(t, sensor.SensorID, got.SensorID)

	// Pair-level update touches every row.
	require.NoError(t, repo.Update(ctx, sensor.SensorID, gateway.GatewayID, &model.Collecte{
		Measurement: 99,
		ErrorRate:   0.5,
		Unit:        "F",
	}))
	rows, err := repo.ListBySensor(ctx, sensor.SensorID)
	require.NoError(t, err)
	require.Len(t, rows, 3)
	for _, row := range rows {
		assert.InDelta(t, 99, row.Measurement, 0.001)
		assert.Equal(t, "F", row.Unit)
	}

	// Pair-level delete removes every row; a second delete is not found.
	require.NoError(t, repo.Delete(ctx, sensor.SensorID, gateway.GatewayID))
	err = repo.Delete(ctx, sensor.SensorID, gateway.GatewayID)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestDataCollectedRoundTrip(t *testing.T) {
	skipIfShort(t)
	resetTables(t)
	ctx := context.Background()

	gateway := &model.Gateway{Name: "esp32"}
	sensor := &model.Sensor{Name: "bmp180"}
	require.NoError(t, NewGatewayRepository(testDB).Create(ctx, gateway))
	require.NoError(t, NewSensorRepository(testDB).Create(ctx, sensor))

	repo := NewDataCollectedRepository(testDB)
	record := &model.DataCollected{
		SensorID:            sensor.SensorID,
		GatewayID:           gateway.GatewayID,
		Measurement:         21.5,
		Unit:                "C",
		DataQuality:         "good",
		BatteryLevel:        87.5,
		SensorConfiguration: model.JSONMap{"sampling_rate": float64(10)},
	}
	require.NoError(t, repo.Create(ctx, record))
	require.NotZero(t, record.ID)

	got, err := repo.GetByID(ctx, record.ID)
	require.NoError(t, err)
	assert.Equal(t, "good", got.DataQuality)
	assert.Equal(t, float64(10), got.SensorConfiguration["sampling_rate"])

	bySensor, err := repo.ListBySensor(ctx, sensor.SensorID)
	require.NoError(t, err)
	assert.Len(t, bySensor, 1)

	require.NoError(t, repo.Delete(ctx, record.ID))
	_, err = repo.GetByID(ctx, record.ID)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestSeedIsIdempotent(t *testing.T) {
	skipIfShort(t)
	resetTables(t)

	require.NoError(t, testDB.Seed())
	require.NoError(t, testDB.Seed())

	sensors, err := NewSensorRepository(testDB).List(context.Background())
	require.NoError(t, err)
	assert.Len(t, sensors, 2)

	gateways, err := NewGatewayRepository(testDB).List(context.Background())
	require.NoError(t, err)
	assert.Len(t, gateways, 2)
}
