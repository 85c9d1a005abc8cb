// Package server adapts the market facade to the gRPC service surface.
package server

import (
	"context"
	"errors"
	"fmt"
	"net"

	"github.com/rs/zerolog/log"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/proto"
	tomb "gopkg.in/tomb.v2"

	pb "stok/api/pb"
	"stok/internal/market"
)

type Server struct {
	pb.UnimplementedMarketServer

	market  *market.Market
	address string
	port    int
}

func New(address string, port int, m *market.Market) *Server {
	return &Server{
		market:  m,
		address: address,
		port:    port,
	}
}

// Run serves until the tomb dies, then stops gracefully.
func (s *Server) Run(t *tomb.Tomb) error {
	var opts []grpc.ServerOption

	// FIXME: This should be configured to use TLS/SSL
	opts = append(opts, grpc.Creds(insecure.NewCredentials()))

	grpcServer := grpc.NewServer(opts...)
	listener, err := net.Listen("tcp", fmt.Sprintf("%s:%d", s.address, s.port))
	if err != nil {
		return err
	}

	pb.RegisterMarketServer(grpcServer, s)

	t.Go(func() error {
		<-t.Dying()
		grpcServer.GracefulStop()
		return nil
	})

	log.Info().Str("address", listener.Addr().String()).Msg("server running")
	return grpcServer.Serve(listener)
}

// ---- Market service implementation ----

func (s *Server) ListSecurities(_ context.Context, _ *pb.ListSecsReq) (*pb.SecList, error) {
	ids := s.market.ListSecurities()
	list := make([]*pb.SecId, 0, len(ids))
	for _, id := range ids {
		list = append(list, secIDProto(id))
	}
	return &pb.SecList{List: list}, nil
}

func (s *Server) CreateAccount(_ context.Context, _ *pb.CreateAccReq) (*pb.AccId, error) {
	return accIDProto(s.market.CreateAccount()), nil
}

func (s *Server) CreateSecurity(_ context.Context, req *pb.CreateSecReq) (*pb.CreateSecResponse, error) {
	sec, owner := s.market.CreateSecurity(req.GetFoundingShares(), req.GetFoundingPrice())
	return &pb.CreateSecResponse{
		Security:  secIDProto(sec),
		OwnerAcct: accIDProto(owner),
	}, nil
}

// RegisterSecValue streams the security's current value once per completed
// matching pass. The stream ends when the caller disconnects, a send
// fails, or the security stops resolving.
func (s *Server) RegisterSecValue(req *pb.SecValueReq, stream pb.Market_RegisterSecValueServer) error {
	sec, err := secIDFromProto(req.GetSec())
	if err != nil {
		return err
	}

	sub := s.market.Subscribe()
	defer sub.Cancel()

	log.Info().Stringer("security", sec).Msg("price subscription registered")
	for {
		select {
		case <-stream.Context().Done():
			log.Info().Stringer("security", sec).Msg("price subscription closed")
			return nil
		case <-sub.Notify():
			value, err := s.market.CurrentValue(sec)
			if err != nil {
				return statusFromError(err)
			}
			if err := stream.Send(&pb.SecValue{Sec: secIDProto(sec), Value: value}); err != nil {
				return err
			}
		}
	}
}

func (s *Server) GetLowestBid(_ context.Context, req *pb.LowestBidReq) (*pb.LowestBid, error) {
	sec, err := secIDFromProto(req.GetSec())
	if err != nil {
		return nil, err
	}
	price, err := s.market.LowestBidPrice(sec)
	var noBids *market.NoBidsError
	if errors.As(err, &noBids) {
		// No bids yet is not a failure; the price field is simply absent.
		return &pb.LowestBid{}, nil
	}
	if err != nil {
		return nil, statusFromError(err)
	}
	return &pb.LowestBid{Price: proto.Float64(price)}, nil
}

func (s *Server) GetHighestAsk(_ context.Context, req *pb.HighestAskReq) (*pb.HighestAsk, error) {
	sec, err := secIDFromProto(req.GetSec())
	if err != nil {
		return nil, err
	}
	price, err := s.market.HighestAskPrice(sec)
	var noAsks *market.NoAsksError
	if errors.As(err, &noAsks) {
		return &pb.HighestAsk{}, nil
	}
	if err != nil {
		return nil, statusFromError(err)
	}
	return &pb.HighestAsk{Price: proto.Float64(price)}, nil
}

func (s *Server) GetMarketCap(_ context.Context, req *pb.MarketCapReq) (*pb.MarketCap, error) {
	sec, err := secIDFromProto(req.GetSec())
	if err != nil {
		return nil, err
	}
	mcap, err := s.market.MarketCap(sec)
	if err != nil {
		return nil, statusFromError(err)
	}
	return &pb.MarketCap{Marketcap: mcap}, nil
}

func (s *Server) PlaceBid(_ context.Context, req *pb.Bid) (*pb.BidPlaced, error) {
	sec, err := secIDFromProto(req.GetSec())
	if err != nil {
		return nil, err
	}
	acc, err := accIDFromProto(req.GetAcc())
	if err != nil {
		return nil, err
	}
	if err := s.market.PlaceBid(acc, sec, req.GetPrice()); err != nil {
		return nil, statusFromError(err)
	}
	return &pb.BidPlaced{Price: req.GetPrice()}, nil
}

func (s *Server) PlaceAsk(_ context.Context, req *pb.Ask) (*pb.AskPlaced, error) {
	sec, err := secIDFromProto(req.GetSec())
	if err != nil {
		return nil, err
	}
	acc, err := accIDFromProto(req.GetAcc())
	if err != nil {
		return nil, err
	}
	if err := s.market.PlaceAsk(acc, sec, req.GetPrice()); err != nil {
		return nil, statusFromError(err)
	}
	return &pb.AskPlaced{Price: req.GetPrice()}, nil
}

// ---- Conversions and status mapping ----

// secIDFromProto unwraps the UUID envelope. A missing or unparseable id is
// a data-format failure, distinct from an unknown id.
func secIDFromProto(sec *pb.SecId) (market.SecID, error) {
	id := sec.GetId()
	if id == nil {
		return market.SecID{}, status.Error(codes.DataLoss, "no security ID sent")
	}
	parsed, err := market.ParseSecID(id.GetValue())
	if err != nil {
		return market.SecID{}, status.Errorf(codes.DataLoss, "invalid security ID sent: %s", id.GetValue())
	}
	return parsed, nil
}

func accIDFromProto(acc *pb.AccId) (market.AccID, error) {
	id := acc.GetId()
	if id == nil {
		return market.AccID{}, status.Error(codes.DataLoss, "no account ID sent")
	}
	parsed, err := market.ParseAccID(id.GetValue())
	if err != nil {
		return market.AccID{}, status.Errorf(codes.DataLoss, "invalid account ID sent: %s", id.GetValue())
	}
	return parsed, nil
}

func secIDProto(id market.SecID) *pb.SecId {
	return &pb.SecId{Id: &pb.Uuid{Value: id.String()}}
}

func accIDProto(id market.AccID) *pb.AccId {
	return &pb.AccId{Id: &pb.Uuid{Value: id.String()}}
}

// statusFromError maps market error kinds onto gRPC codes. Empty-queue
// results never reach here; the handlers translate them to empty optionals.
func statusFromError(err error) error {
	var secErr *market.SecurityNotFoundError
	var accErr *market.AccountNotFoundError
	switch {
	case errors.As(err, &secErr):
		return status.Errorf(codes.FailedPrecondition, "security %s does not exist", secErr.Sec)
	case errors.As(err, &accErr):
		return status.Errorf(codes.FailedPrecondition, "account %s does not exist", accErr.Acc)
	case errors.Is(err, market.ErrInvalidPrice):
		return status.Error(codes.InvalidArgument, err.Error())
	}
	return status.Error(codes.Internal, err.Error())
}
