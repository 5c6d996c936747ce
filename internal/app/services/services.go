package services

// Services defined in this package:
// - UserService: account lookup, idempotent creation, role checks and promotions
// - ClassService: class listings, instructor submissions, admin moderation actions
// - InstructorService: read-only instructor reference data
// - CartService: student cart listings and mutations with self-scope enforcement
// - PaymentService: payment intent creation and settlement
