// Package services implements the driving ports over the driven ones.
//
// Services hold the application's state and orchestration logic:
//
//   - PortfolioService: the repository collection's load lifecycle,
//     inclusion filtering, tag aggregation and interactive filtering
//   - MetricsService: account metrics collection and history
//
// Services depend only on domain types and port interfaces; adapters
// are injected through constructors.
package services
