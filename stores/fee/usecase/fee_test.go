package usecase

import (
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"github.com/mintora/goapi/base/ctx"
	"github.com/mintora/goapi/domain"
	"github.com/mintora/goapi/domain/fee"
	mFee "github.com/mintora/goapi/domain/fee/mocks"
)

const operator = domain.Address("0x5555555555555555555555555555555555555555")

type feeSuite struct {
	suite.Suite

	feeRepo *mFee.Repo
	im      *impl
}

func TestFeeSuite(t *testing.T) {
	suite.Run(t, new(feeSuite))
}

func (s *feeSuite) SetupTest() {
	s.feeRepo = &mFee.Repo{}
	s.im = NewFeeUseCase(&FeeUseCaseCfg{
		FeeRepo:  s.feeRepo,
		Operator: operator,
	}).(*impl)
}

func (s *feeSuite) TearDownTest() {
	s.feeRepo.AssertExpectations(s.T())
}

func (s *feeSuite) TestCurrent() {
	ctx := ctx.Background()
	s.feeRepo.On("Get", mock.Anything).Return(&fee.Policy{Amount: "5"}, nil).Once()

	amount, err := s.im.Current(ctx)
	s.NoError(err)
	s.Equal(domain.Amount("5"), amount)
}

func (s *feeSuite) TestSetFee() {
	ctx := ctx.Background()
	s.feeRepo.On("Set", mock.Anything, domain.Amount("7")).Return(nil).Once()

	s.NoError(s.im.SetFee(ctx, operator, "7"))
}

func (s *feeSuite) TestSetFeeNotOperator() {
	ctx := ctx.Background()

	err := s.im.SetFee(ctx, domain.Address("0x1111111111111111111111111111111111111111"), "7")
	s.ErrorIs(err, domain.ErrNotOperator)
	s.feeRepo.AssertNotCalled(s.T(), "Set", mock.Anything, mock.Anything)
}

func (s *feeSuite) TestSetFeeInvalidAmount() {
	ctx := ctx.Background()

	s.ErrorIs(s.im.SetFee(ctx, operator, "-1"), domain.ErrInvalidPrice)
}

func (s *feeSuite) TestOperatorIsLowercased() {
	s.Equal(operator.ToLower(), s.im.Operator())
}
