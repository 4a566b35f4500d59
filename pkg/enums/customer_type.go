package enums

// CustomerType distinguishes company accounts from individual buyers.
type CustomerType string

const (
	CustomerTypeCompany    CustomerType = "company"
	CustomerTypeIndividual CustomerType = "individual"
)

var validCustomerTypes = []CustomerType{
	CustomerTypeCompany,
	CustomerTypeIndividual,
}

func (c CustomerType) String() string { return string(c) }

func (c CustomerType) IsValid() bool { return isOneOf(validCustomerTypes, c) }

func ParseCustomerType(value string) (CustomerType, error) {
	return parseOneOf("customer type", validCustomerTypes, value)
}
