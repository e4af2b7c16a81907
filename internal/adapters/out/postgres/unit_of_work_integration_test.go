package postgres_test

import (
	"context"
	"testing"
	"time"

	postgres_adapter "orders/internal/adapters/out/postgres"
	"orders/internal/adapters/out/postgres/orderrepo"
	"orders/internal/adapters/out/postgres/rulerepo"
	"orders/internal/adapters/out/postgres/stationrepo"
	"orders/internal/adapters/out/postgres/ticketrepo"
	"orders/internal/core/domain/model/kernel"
	"orders/internal/core/domain/model/order"
	"orders/internal/core/domain/model/routing"
	"orders/internal/core/domain/model/station"
	"orders/internal/core/domain/model/ticket"
	"orders/internal/core/ports"
	"orders/internal/pkg/errs"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// UnitOfWorkIntegrationTestSuite exercises the GORM-based Unit of Work and
// its repositories against a real PostgreSQL database.
type UnitOfWorkIntegrationTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	factory   ports.UnitOfWorkFactory
}

// SetupSuite initializes the PostgreSQL container and database connection,
// then runs the schema migrations.
func (suite *UnitOfWorkIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(wait.ForLog("database system is ready to accept connections").
			WithOccurrence(2)),
	)
	suite.Require().NoError(err)
	suite.container = container

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	err = db.AutoMigrate(
		&orderrepo.OrderDTO{},
		&orderrepo.ItemDTO{},
		&orderrepo.DailySequenceDTO{},
		&stationrepo.StationDTO{},
		&rulerepo.RuleDTO{},
		&ticketrepo.TicketDTO{},
	)
	suite.Require().NoError(err)

	suite.factory = postgres_adapter.NewGormUnitOfWorkFactory(db)
}

// SetupTest ensures clean database state before each test.
func (suite *UnitOfWorkIntegrationTestSuite) SetupTest() {
	err := suite.db.Exec("TRUNCATE TABLE orders, order_items, order_sequences, stations, routing_rules, tickets").Error
	suite.Require().NoError(err)
}

// TearDownSuite cleans up the PostgreSQL container after all tests complete.
func (suite *UnitOfWorkIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		err := suite.container.Terminate(context.Background())
		suite.Require().NoError(err)
	}
}

// TestUnitOfWork_TransactionLifecycle verifies begin, repeated begin, commit
// and rollback behave as documented.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_TransactionLifecycle() {
	ctx := context.Background()
	uow := suite.factory.Create()

	err := uow.Begin(ctx)
	suite.Require().NoError(err)

	err = uow.Begin(ctx)
	suite.Require().NoError(err, "Repeated begin should be a no-op")

	err = uow.Commit(ctx)
	suite.Require().NoError(err)

	err = uow.Begin(ctx)
	suite.Require().NoError(err)

	err = uow.Rollback(ctx)
	suite.Require().NoError(err)
}

// TestUnitOfWork_TransactionErrors verifies commit and rollback without an
// active transaction are rejected.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_TransactionErrors() {
	ctx := context.Background()
	uow := suite.factory.Create()

	err := uow.Commit(ctx)
	suite.Require().Error(err, "Should error when committing without active transaction")

	err = uow.Rollback(ctx)
	suite.Require().Error(err, "Should error when rolling back without active transaction")
}

// TestOrderRepository_RoundTrip verifies an order with items survives the
// save and restore cycle with all state intact.
func (suite *UnitOfWorkIntegrationTestSuite) TestOrderRepository_RoundTrip() {
	ctx := context.Background()
	uow := suite.factory.Create()

	testOrder := createTestOrder("Burger", "Fries")

	err := uow.Begin(ctx)
	suite.Require().NoError(err)

	err = uow.OrderRepository().Add(ctx, testOrder)
	suite.Require().NoError(err)

	err = uow.Commit(ctx)
	suite.Require().NoError(err)

	restored, err := suite.factory.Create().OrderRepository().Get(ctx, testOrder.ID())
	suite.Require().NoError(err)
	suite.Equal(testOrder.ID(), restored.ID())
	suite.Equal(testOrder.Number(), restored.Number())
	suite.Equal(testOrder.TableRef(), restored.TableRef())
	suite.Equal(order.Open, restored.Status())
	suite.Require().Len(restored.Items(), 2)
	suite.Equal("Burger", restored.Items()[0].Name())
	suite.Equal("Fries", restored.Items()[1].Name())
}

// TestOrderRepository_FiredRoundTrip verifies the fire snapshot persists:
// item statuses, station routes and the fire timestamps.
func (suite *UnitOfWorkIntegrationTestSuite) TestOrderRepository_FiredRoundTrip() {
	ctx := context.Background()
	uow := suite.factory.Create()

	testOrder := createTestOrder("Burger")
	stationID := kernel.NewUUID()
	now := time.Now().UTC().Truncate(time.Second)

	routes := map[kernel.UUID][]kernel.UUID{
		testOrder.Items()[0].ID(): {stationID},
	}
	err := testOrder.Fire(routes, now)
	suite.Require().NoError(err)

	err = uow.Begin(ctx)
	suite.Require().NoError(err)
	err = uow.OrderRepository().Add(ctx, testOrder)
	suite.Require().NoError(err)
	err = uow.Commit(ctx)
	suite.Require().NoError(err)

	restored, err := suite.factory.Create().OrderRepository().Get(ctx, testOrder.ID())
	suite.Require().NoError(err)
	suite.Equal(order.Fired, restored.Status())
	suite.Equal(1, restored.FireSequence())
	suite.Require().NotNil(restored.FiredAt())
	suite.Require().Len(restored.Items(), 1)
	suite.Equal(order.ItemFired, restored.Items()[0].Status())
	suite.Equal([]kernel.UUID{stationID}, restored.Items()[0].StationIDs())
}

// TestOrderRepository_VersionConflict verifies that a writer holding a stale
// version loses against a committed update.
func (suite *UnitOfWorkIntegrationTestSuite) TestOrderRepository_VersionConflict() {
	ctx := context.Background()

	testOrder := createTestOrder("Burger")
	err := suite.factory.Create().OrderRepository().Add(ctx, testOrder)
	suite.Require().NoError(err)

	// Two workers load the same version.
	first, err := suite.factory.Create().OrderRepository().Get(ctx, testOrder.ID())
	suite.Require().NoError(err)
	second, err := suite.factory.Create().OrderRepository().Get(ctx, testOrder.ID())
	suite.Require().NoError(err)

	itemID := testOrder.Items()[0].ID()
	err = first.ChangeItemQuantity(itemID, 2)
	suite.Require().NoError(err)
	err = suite.factory.Create().OrderRepository().Update(ctx, first)
	suite.Require().NoError(err)

	err = second.ChangeItemQuantity(itemID, 3)
	suite.Require().NoError(err)
	err = suite.factory.Create().OrderRepository().Update(ctx, second)
	suite.Require().ErrorIs(err, errs.ErrConflict)

	restored, err := suite.factory.Create().OrderRepository().Get(ctx, testOrder.ID())
	suite.Require().NoError(err)
	suite.Equal(2, restored.Items()[0].Quantity())
}

// TestOrderRepository_NextDailySequence verifies the per-day counter starts
// at one and increments per call, independently for each day.
func (suite *UnitOfWorkIntegrationTestSuite) TestOrderRepository_NextDailySequence() {
	ctx := context.Background()
	repo := suite.factory.Create().OrderRepository()

	today := time.Date(2026, 3, 14, 11, 30, 0, 0, time.UTC)
	tomorrow := today.AddDate(0, 0, 1)

	seq, err := repo.NextDailySequence(ctx, today)
	suite.Require().NoError(err)
	suite.Equal(1, seq)

	seq, err = repo.NextDailySequence(ctx, today)
	suite.Require().NoError(err)
	suite.Equal(2, seq)

	seq, err = repo.NextDailySequence(ctx, tomorrow)
	suite.Require().NoError(err)
	suite.Equal(1, seq, "Counter should reset for a new day")
}

// TestRuleRepository_SequenceAssignment verifies the database assigns
// insertion sequences on Add and that GetAllActive orders by priority then
// sequence.
func (suite *UnitOfWorkIntegrationTestSuite) TestRuleRepository_SequenceAssignment() {
	ctx := context.Background()
	repo := suite.factory.Create().RuleRepository()
	stationID := kernel.NewUUID()

	late := createTestRule(20, "desserts", stationID)
	early := createTestRule(10, "mains", stationID)
	tieBreak := createTestRule(10, "sides", stationID)

	for _, rule := range []*routing.Rule{late, early, tieBreak} {
		err := repo.Add(ctx, rule)
		suite.Require().NoError(err)
		suite.Require().NotZero(rule.Seq(), "Add should assign the insertion sequence")
	}
	suite.Less(early.Seq(), tieBreak.Seq())

	active, err := repo.GetAllActive(ctx)
	suite.Require().NoError(err)
	suite.Require().Len(active, 3)
	suite.Equal(early.ID(), active[0].ID())
	suite.Equal(tieBreak.ID(), active[1].ID())
	suite.Equal(late.ID(), active[2].ID())
}

// TestRuleRepository_CountActiveForStation verifies deactivated rules drop
// out of the station's active count.
func (suite *UnitOfWorkIntegrationTestSuite) TestRuleRepository_CountActiveForStation() {
	ctx := context.Background()
	repo := suite.factory.Create().RuleRepository()
	stationID := kernel.NewUUID()

	rule := createTestRule(10, "mains", stationID)
	err := repo.Add(ctx, rule)
	suite.Require().NoError(err)

	count, err := repo.CountActiveForStation(ctx, stationID)
	suite.Require().NoError(err)
	suite.Equal(int64(1), count)

	rule.Deactivate()
	err = repo.Update(ctx, rule)
	suite.Require().NoError(err)

	count, err = repo.CountActiveForStation(ctx, stationID)
	suite.Require().NoError(err)
	suite.Zero(count)
}

// TestStationRepository_GetByName verifies name lookups and the active-only
// listing filter.
func (suite *UnitOfWorkIntegrationTestSuite) TestStationRepository_GetByName() {
	ctx := context.Background()
	repo := suite.factory.Create().StationRepository()

	grill := createTestStation("Grill", 1)
	fryer := createTestStation("Fryer", 2)
	fryer.Deactivate()

	suite.Require().NoError(repo.Add(ctx, grill))
	suite.Require().NoError(repo.Add(ctx, fryer))

	found, err := repo.GetByName(ctx, "Grill")
	suite.Require().NoError(err)
	suite.Equal(grill.ID(), found.ID())

	_, err = repo.GetByName(ctx, "Expo")
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)

	active, err := repo.GetAll(ctx, true)
	suite.Require().NoError(err)
	suite.Require().Len(active, 1)
	suite.Equal("Grill", active[0].Name())

	all, err := repo.GetAll(ctx, false)
	suite.Require().NoError(err)
	suite.Len(all, 2)
}

// TestTicketRepository_GetActiveByStation verifies station ticket queues
// surface VIP orders first and exclude bumped orders.
func (suite *UnitOfWorkIntegrationTestSuite) TestTicketRepository_GetActiveByStation() {
	ctx := context.Background()
	uow := suite.factory.Create()
	stationID := kernel.NewUUID()
	now := time.Now().UTC().Truncate(time.Second)

	normalOrder := createFiredOrder(stationID, order.Normal, now)
	vipOrder := createFiredOrder(stationID, order.VIP, now.Add(time.Minute))

	err := uow.Begin(ctx)
	suite.Require().NoError(err)
	for _, o := range []*order.Order{normalOrder, vipOrder} {
		suite.Require().NoError(uow.OrderRepository().Add(ctx, o))
		tk := createTestTicket(o, stationID)
		suite.Require().NoError(uow.TicketRepository().Add(ctx, tk))
	}
	err = uow.Commit(ctx)
	suite.Require().NoError(err)

	queue, err := suite.factory.Create().TicketRepository().GetActiveByStation(ctx, stationID)
	suite.Require().NoError(err)
	suite.Require().Len(queue, 2)
	suite.Equal(vipOrder.ID(), queue[0].OrderID(), "VIP order should head the queue despite firing later")
	suite.Equal(normalOrder.ID(), queue[1].OrderID())
}

// TestTicketRepository_AckRoundTrip verifies ticket acknowledgment state and
// print status survive updates.
func (suite *UnitOfWorkIntegrationTestSuite) TestTicketRepository_AckRoundTrip() {
	ctx := context.Background()
	stationID := kernel.NewUUID()
	now := time.Now().UTC().Truncate(time.Second)

	firedOrder := createFiredOrder(stationID, order.Normal, now)
	tk := createTestTicket(firedOrder, stationID)

	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.OrderRepository().Add(ctx, firedOrder))
	suite.Require().NoError(uow.TicketRepository().Add(ctx, tk))
	suite.Require().NoError(uow.Commit(ctx))

	ackedAt := now.Add(2 * time.Minute)
	tk.Ack(ackedAt)
	err := tk.MarkPrinted()
	suite.Require().NoError(err)
	suite.Require().NoError(suite.factory.Create().TicketRepository().Update(ctx, tk))

	restored, err := suite.factory.Create().TicketRepository().Get(ctx, tk.ID())
	suite.Require().NoError(err)
	suite.True(restored.IsAcked())
	suite.Require().NotNil(restored.AckedAt())
	suite.Equal(ackedAt, restored.AckedAt().UTC())
	suite.Equal(ticket.Printed, restored.PrintStatus())

	byOrder, err := suite.factory.Create().TicketRepository().GetByOrder(ctx, firedOrder.ID())
	suite.Require().NoError(err)
	suite.Require().Len(byOrder, 1)
	suite.Equal(tk.ID(), byOrder[0].ID())
}

// TestUnitOfWork_FireWorkflowRollback verifies a rollback discards the order
// update and the ticket batch together.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_FireWorkflowRollback() {
	ctx := context.Background()
	stationID := kernel.NewUUID()
	now := time.Now().UTC()

	testOrder := createTestOrder("Burger")
	suite.Require().NoError(suite.factory.Create().OrderRepository().Add(ctx, testOrder))

	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))

	loaded, err := uow.OrderRepository().Get(ctx, testOrder.ID())
	suite.Require().NoError(err)
	routes := map[kernel.UUID][]kernel.UUID{loaded.Items()[0].ID(): {stationID}}
	suite.Require().NoError(loaded.Fire(routes, now))

	tk := createTestTicket(loaded, stationID)
	suite.Require().NoError(uow.OrderRepository().Update(ctx, loaded))
	suite.Require().NoError(uow.TicketRepository().AddAll(ctx, []*ticket.Ticket{tk}))

	suite.Require().NoError(uow.Rollback(ctx))

	restored, err := suite.factory.Create().OrderRepository().Get(ctx, testOrder.ID())
	suite.Require().NoError(err)
	suite.Equal(order.Open, restored.Status(), "Order should stay open after rollback")

	_, err = suite.factory.Create().TicketRepository().Get(ctx, tk.ID())
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

// createTestOrder creates an open order with one pending item per given name.
func createTestOrder(itemNames ...string) *order.Order {
	return createTestOrderWithPriority(order.Normal, itemNames...)
}

func createTestOrderWithPriority(priority order.Priority, itemNames ...string) *order.Order {
	now := time.Now().UTC().Truncate(time.Second)
	testOrder, _ := order.NewOrder(
		kernel.NewUUID(), order.FormatNumber(now, 1), "T12",
		order.DineIn, priority, "", now,
	)
	for _, name := range itemNames {
		item, _ := order.NewItem(
			kernel.NewUUID(), kernel.NewUUID(), name, "mains",
			[]string{"hot"}, 1, nil, "", nil,
		)
		_ = testOrder.AddItem(item)
	}
	return testOrder
}

// createFiredOrder creates an order already fired with every item routed to
// the given station.
func createFiredOrder(stationID kernel.UUID, priority order.Priority, firedAt time.Time) *order.Order {
	testOrder := createTestOrderWithPriority(priority, "Burger")
	routes := map[kernel.UUID][]kernel.UUID{testOrder.Items()[0].ID(): {stationID}}
	_ = testOrder.Fire(routes, firedAt)
	return testOrder
}

// createTestTicket creates a ticket covering all items of a fired order.
func createTestTicket(o *order.Order, stationID kernel.UUID) *ticket.Ticket {
	itemIDs := make([]kernel.UUID, 0, len(o.Items()))
	for _, item := range o.Items() {
		itemIDs = append(itemIDs, item.ID())
	}
	tk, _ := ticket.NewTicket(kernel.NewUUID(), o.ID(), stationID, itemIDs, o.FireSequence(), o.CreatedAt())
	return tk
}

// createTestStation creates an active station.
func createTestStation(name string, sortOrder int) *station.Station {
	s, _ := station.NewStation(kernel.NewUUID(), name, []string{"hot"}, sortOrder)
	return s
}

// createTestRule creates an active category rule targeting a station.
func createTestRule(priority int, category string, stationID kernel.UUID) *routing.Rule {
	matcher, _ := routing.NewCategoryMatcher(category)
	rule, _ := routing.NewRule(kernel.NewUUID(), priority, matcher, stationID)
	return rule
}

// TestUnitOfWorkIntegrationTestSuite runs the integration test suite.
func TestUnitOfWorkIntegrationTestSuite(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration tests in short mode")
	}
	suite.Run(t, new(UnitOfWorkIntegrationTestSuite))
}
