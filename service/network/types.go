package network

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/service/ec2"
	ec2types "github.com/aws/aws-sdk-go-v2/service/ec2/types"
	"github.com/aws/aws-sdk-go-v2/service/elasticloadbalancingv2"
	elbv2types "github.com/aws/aws-sdk-go-v2/service/elasticloadbalancingv2/types"
)

// EC2ClientAPI is the interface for the EC2 client methods used by the service.
type EC2ClientAPI interface {
	DescribeVpcs(ctx context.Context, params *ec2.DescribeVpcsInput, optFns ...func(*ec2.Options)) (*ec2.DescribeVpcsOutput, error)
	DescribeSubnets(ctx context.Context, params *ec2.DescribeSubnetsInput, optFns ...func(*ec2.Options)) (*ec2.DescribeSubnetsOutput, error)
	DescribeSecurityGroups(ctx context.Context, params *ec2.DescribeSecurityGroupsInput, optFns ...func(*ec2.Options)) (*ec2.DescribeSecurityGroupsOutput, error)
	DescribeNetworkAcls(ctx context.Context, params *ec2.DescribeNetworkAclsInput, optFns ...func(*ec2.Options)) (*ec2.DescribeNetworkAclsOutput, error)
	DescribeRouteTables(ctx context.Context, params *ec2.DescribeRouteTablesInput, optFns ...func(*ec2.Options)) (*ec2.DescribeRouteTablesOutput, error)
	DescribeVpcEndpoints(ctx context.Context, params *ec2.DescribeVpcEndpointsInput, optFns ...func(*ec2.Options)) (*ec2.DescribeVpcEndpointsOutput, error)
	DescribeVpcPeeringConnections(ctx context.Context, params *ec2.DescribeVpcPeeringConnectionsInput, optFns ...func(*ec2.Options)) (*ec2.DescribeVpcPeeringConnectionsOutput, error)
}

// ELBV2ClientAPI is the interface for the ELBv2 client methods used by the service.
type ELBV2ClientAPI interface {
	DescribeLoadBalancers(ctx context.Context, params *elasticloadbalancingv2.DescribeLoadBalancersInput, optFns ...func(*elasticloadbalancingv2.Options)) (*elasticloadbalancingv2.DescribeLoadBalancersOutput, error)
}

// Inventory holds the raw listing results for one region. Records are the
// provider's own types, passed through without normalization; the JSON keys
// match the stored document layout.
type Inventory struct {
	Vpcs                  []ec2types.Vpc                  `json:"vpcs"`
	Subnets               []ec2types.Subnet               `json:"subnets"`
	SecurityGroups        []ec2types.SecurityGroup        `json:"security_groups"`
	NetworkAcls           []ec2types.NetworkAcl           `json:"network_acls"`
	RouteTables           []ec2types.RouteTable           `json:"route_tables"`
	VpcEndpoints          []ec2types.VpcEndpoint          `json:"vpc_endpoints"`
	VpcPeeringConnections []ec2types.VpcPeeringConnection `json:"vpc_peering_connections"`
	LoadBalancers         []elbv2types.LoadBalancer       `json:"load_balancers"`
}

// AccountDocumentation maps region code to the inventory collected there.
// An account whose role could not be assumed keeps an empty map.
type AccountDocumentation map[string]Inventory

// Documentation maps account ID to its per-region documentation.
type Documentation map[string]AccountDocumentation

type service struct {
	ec2Client   EC2ClientAPI
	elbv2Client ELBV2ClientAPI
	region      string
}

// Service is the interface for listing networking resources in one region.
type Service interface {
	GetVpcs(ctx context.Context) []ec2types.Vpc
	GetSubnets(ctx context.Context) []ec2types.Subnet
	GetSecurityGroups(ctx context.Context) []ec2types.SecurityGroup
	GetNetworkAcls(ctx context.Context) []ec2types.NetworkAcl
	GetRouteTables(ctx context.Context) []ec2types.RouteTable
	GetVpcEndpoints(ctx context.Context) []ec2types.VpcEndpoint
	GetVpcPeeringConnections(ctx context.Context) []ec2types.VpcPeeringConnection
	GetLoadBalancers(ctx context.Context) []elbv2types.LoadBalancer
	CollectInventory(ctx context.Context) Inventory
}
