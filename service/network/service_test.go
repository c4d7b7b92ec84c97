package network

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/ec2"
	ec2types "github.com/aws/aws-sdk-go-v2/service/ec2/types"
	"github.com/aws/aws-sdk-go-v2/service/elasticloadbalancingv2"
	elbv2types "github.com/aws/aws-sdk-go-v2/service/elasticloadbalancingv2/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeEC2Client struct {
	vpcs     []ec2types.Vpc
	subnets  []ec2types.Subnet
	groups   []ec2types.SecurityGroup
	acls     []ec2types.NetworkAcl
	tables   []ec2types.RouteTable
	eps      []ec2types.VpcEndpoint
	peerings []ec2types.VpcPeeringConnection

	vpcPageSize int
	vpcCalls    int

	failVpcs    error
	failSubnets error
}

func (f *fakeEC2Client) DescribeVpcs(_ context.Context, params *ec2.DescribeVpcsInput, _ ...func(*ec2.Options)) (*ec2.DescribeVpcsOutput, error) {
	f.vpcCalls++
	if f.failVpcs != nil {
		return nil, f.failVpcs
	}
	if f.vpcPageSize <= 0 || f.vpcPageSize >= len(f.vpcs) {
		return &ec2.DescribeVpcsOutput{Vpcs: f.vpcs}, nil
	}

	// Token is the index of the next page start.
	start := 0
	if params.NextToken != nil {
		start = int((*params.NextToken)[0] - '0')
	}
	end := start + f.vpcPageSize
	out := &ec2.DescribeVpcsOutput{}
	if end >= len(f.vpcs) {
		out.Vpcs = f.vpcs[start:]
		return out, nil
	}
	out.Vpcs = f.vpcs[start:end]
	token := string(rune('0' + end))
	out.NextToken = &token
	return out, nil
}

func (f *fakeEC2Client) DescribeSubnets(_ context.Context, _ *ec2.DescribeSubnetsInput, _ ...func(*ec2.Options)) (*ec2.DescribeSubnetsOutput, error) {
	if f.failSubnets != nil {
		return nil, f.failSubnets
	}
	return &ec2.DescribeSubnetsOutput{Subnets: f.subnets}, nil
}

func (f *fakeEC2Client) DescribeSecurityGroups(_ context.Context, _ *ec2.DescribeSecurityGroupsInput, _ ...func(*ec2.Options)) (*ec2.DescribeSecurityGroupsOutput, error) {
	return &ec2.DescribeSecurityGroupsOutput{SecurityGroups: f.groups}, nil
}

func (f *fakeEC2Client) DescribeNetworkAcls(_ context.Context, _ *ec2.DescribeNetworkAclsInput, _ ...func(*ec2.Options)) (*ec2.DescribeNetworkAclsOutput, error) {
	return &ec2.DescribeNetworkAclsOutput{NetworkAcls: f.acls}, nil
}

func (f *fakeEC2Client) DescribeRouteTables(_ context.Context, _ *ec2.DescribeRouteTablesInput, _ ...func(*ec2.Options)) (*ec2.DescribeRouteTablesOutput, error) {
	return &ec2.DescribeRouteTablesOutput{RouteTables: f.tables}, nil
}

func (f *fakeEC2Client) DescribeVpcEndpoints(_ context.Context, _ *ec2.DescribeVpcEndpointsInput, _ ...func(*ec2.Options)) (*ec2.DescribeVpcEndpointsOutput, error) {
	return &ec2.DescribeVpcEndpointsOutput{VpcEndpoints: f.eps}, nil
}

func (f *fakeEC2Client) DescribeVpcPeeringConnections(_ context.Context, _ *ec2.DescribeVpcPeeringConnectionsInput, _ ...func(*ec2.Options)) (*ec2.DescribeVpcPeeringConnectionsOutput, error) {
	return &ec2.DescribeVpcPeeringConnectionsOutput{VpcPeeringConnections: f.peerings}, nil
}

type fakeELBV2Client struct {
	balancers []elbv2types.LoadBalancer
	fail      error
}

func (f *fakeELBV2Client) DescribeLoadBalancers(_ context.Context, _ *elasticloadbalancingv2.DescribeLoadBalancersInput, _ ...func(*elasticloadbalancingv2.Options)) (*elasticloadbalancingv2.DescribeLoadBalancersOutput, error) {
	if f.fail != nil {
		return nil, f.fail
	}
	return &elasticloadbalancingv2.DescribeLoadBalancersOutput{LoadBalancers: f.balancers}, nil
}

func newTestService(ec2Client EC2ClientAPI, elbClient ELBV2ClientAPI) *service {
	return &service{ec2Client: ec2Client, elbv2Client: elbClient, region: "us-east-1"}
}

func TestNewService(t *testing.T) {
	cfg := aws.Config{Region: "us-east-1"}
	var svc Service = NewService(cfg)
	if svc == nil {
		t.Error("NewService returned nil")
	}
}

func TestCollectInventoryAllTypes(t *testing.T) {
	ec2Fake := &fakeEC2Client{
		vpcs:     []ec2types.Vpc{{VpcId: aws.String("vpc-1")}},
		subnets:  []ec2types.Subnet{{SubnetId: aws.String("subnet-1")}, {SubnetId: aws.String("subnet-2")}},
		groups:   []ec2types.SecurityGroup{{GroupId: aws.String("sg-1")}},
		acls:     []ec2types.NetworkAcl{{NetworkAclId: aws.String("acl-1")}},
		tables:   []ec2types.RouteTable{{RouteTableId: aws.String("rtb-1")}},
		eps:      []ec2types.VpcEndpoint{{VpcEndpointId: aws.String("vpce-1")}},
		peerings: []ec2types.VpcPeeringConnection{{VpcPeeringConnectionId: aws.String("pcx-1")}},
	}
	elbFake := &fakeELBV2Client{
		balancers: []elbv2types.LoadBalancer{{LoadBalancerName: aws.String("alb-1")}},
	}

	inv := newTestService(ec2Fake, elbFake).CollectInventory(context.Background())

	assert.Len(t, inv.Vpcs, 1)
	assert.Len(t, inv.Subnets, 2)
	assert.Len(t, inv.SecurityGroups, 1)
	assert.Len(t, inv.NetworkAcls, 1)
	assert.Len(t, inv.RouteTables, 1)
	assert.Len(t, inv.VpcEndpoints, 1)
	assert.Len(t, inv.VpcPeeringConnections, 1)
	assert.Len(t, inv.LoadBalancers, 1)
}

func TestCollectorFailureIsolated(t *testing.T) {
	ec2Fake := &fakeEC2Client{
		failVpcs: errors.New("throttled"),
		subnets:  []ec2types.Subnet{{SubnetId: aws.String("subnet-1")}},
	}
	elbFake := &fakeELBV2Client{fail: errors.New("denied")}

	inv := newTestService(ec2Fake, elbFake).CollectInventory(context.Background())

	// The failed collectors degrade to empty, non-nil lists.
	require.NotNil(t, inv.Vpcs)
	assert.Empty(t, inv.Vpcs)
	require.NotNil(t, inv.LoadBalancers)
	assert.Empty(t, inv.LoadBalancers)

	// Siblings in the same region are unaffected.
	assert.Len(t, inv.Subnets, 1)
}

func TestCollectorsNeverReturnNil(t *testing.T) {
	inv := newTestService(&fakeEC2Client{}, &fakeELBV2Client{}).CollectInventory(context.Background())

	data, err := json.Marshal(inv)
	require.NoError(t, err)
	assert.NotContains(t, string(data), "null")
}

func TestGetVpcsFollowsPagination(t *testing.T) {
	ec2Fake := &fakeEC2Client{
		vpcs: []ec2types.Vpc{
			{VpcId: aws.String("vpc-1")},
			{VpcId: aws.String("vpc-2")},
			{VpcId: aws.String("vpc-3")},
		},
		vpcPageSize: 2,
	}

	vpcs := newTestService(ec2Fake, &fakeELBV2Client{}).GetVpcs(context.Background())

	assert.Len(t, vpcs, 3)
	assert.Equal(t, 2, ec2Fake.vpcCalls)
}

func TestInventoryJSONKeys(t *testing.T) {
	inv := newTestService(&fakeEC2Client{}, &fakeELBV2Client{}).CollectInventory(context.Background())

	data, err := json.Marshal(inv)
	require.NoError(t, err)

	var decoded map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(data, &decoded))

	for _, key := range []string{
		"vpcs", "subnets", "security_groups", "network_acls",
		"route_tables", "vpc_endpoints", "vpc_peering_connections", "load_balancers",
	} {
		assert.Contains(t, decoded, key)
	}
	assert.Len(t, decoded, 8)
}
