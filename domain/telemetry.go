package domain

var (
	// sqs_verifier_check_failure_total
	//
	// counter that measures the number of failed verification checks
	//
	// Has the following labels:
	// * check - the name of the failed check
	SQSVerifierCheckFailureMetricName = "sqs_verifier_check_failure_total"

	// sqs_verifier_quote_verified_total
	//
	// counter that measures the number of verified quotes
	//
	// Has the following labels:
	// * result - pass or fail
	SQSVerifierQuoteVerifiedMetricName = "sqs_verifier_quote_verified_total"
)
